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

package search

import (
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/zobrist"
)

// BookProbe is the seam a driver can plug an opening book into: given a
// position's Zobrist hash, it returns a move to play instead of
// searching, and whether it found one. No implementation ships in this
// package; a nil BookProbe disables the seam entirely, and threadpool.Pool.Go
// falls through to the normal lazy-SMP search unconditionally.
type BookProbe interface {
	Probe(hash zobrist.Key) (move.Move, bool)
}
