// Copyright © 2023 Rak Laptudirm <raklaptudirm@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package board

import (
	"fmt"

	"github.com/kestrelchess/kestrel/pkg/move"
)

// MoveFromUCI finds the legal move on b whose long algebraic form (see
// move.Move.String) is s, as sent by a UCI "position ... moves" command.
func (b *Board) MoveFromUCI(s string) (move.Move, error) {
	list := b.GenerateMoves(make([]move.Move, 0, 64), Legal, All)
	for _, m := range list {
		if m.String() == s {
			return m, nil
		}
	}
	return move.Null, fmt.Errorf("board: %q is not a legal move in this position", s)
}
