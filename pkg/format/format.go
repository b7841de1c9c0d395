// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

// Package format renders moves as UCI long algebraic or Standard
// Algebraic Notation strings, disambiguated against the legal moves of
// the position they are played in.
package format

import (
	"strconv"
	"strings"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
)

// UCI renders m in long algebraic notation, identical to move.Move's own
// String method; exposed here too so callers only need to import one
// package for all move-text concerns.
func UCI(m move.Move) string {
	return m.String()
}

// SAN renders m, which must be legal in b, as Standard Algebraic
// Notation, including the '+'/'#' suffix and disambiguation against any
// other legal move sharing the same piece type and destination.
func SAN(b *board.Board, m move.Move) string {
	if m.IsCastle() {
		s := "O-O"
		if m.Flag() == move.FlagQueenCastle {
			s = "O-O-O"
		}
		return s + checkSuffix(b, m)
	}

	from, to := m.Source(), m.Target()
	p := b.PieceAt(from)

	var sb strings.Builder

	if p.Type() == piece.Pawn {
		if m.IsCapture() {
			sb.WriteString(from.File().String())
			sb.WriteByte('x')
		}
		sb.WriteString(to.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteString(strings.ToUpper(string(promoLetter(m))))
		}
		return sb.String() + checkSuffix(b, m)
	}

	sb.WriteString(strings.ToUpper(p.Type().String()))
	sb.WriteString(disambiguation(b, m))
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(to.String())

	return sb.String() + checkSuffix(b, m)
}

func promoLetter(m move.Move) byte {
	return "nbrq"[m.PromotedType()]
}

// disambiguation computes the minimal file/rank/square prefix needed to
// distinguish m from any other legal move of the same piece type to the
// same destination, per the standard SAN disambiguation rules.
func disambiguation(b *board.Board, m move.Move) string {
	from, to := m.Source(), m.Target()
	p := b.PieceAt(from)

	legal := b.GenerateMoves(make([]move.Move, 0, 64), board.Legal, board.All)

	sameFile, sameRank, ambiguous := false, false, false
	for _, c := range legal {
		if c == m || c.Target() != to {
			continue
		}
		if b.PieceAt(c.Source()) != p {
			continue
		}
		ambiguous = true
		if c.Source().File() == from.File() {
			sameFile = true
		}
		if c.Source().Rank() == from.Rank() {
			sameRank = true
		}
	}

	if !ambiguous {
		return ""
	}
	switch {
	case !sameFile:
		return from.File().String()
	case !sameRank:
		return from.Rank().String()
	default:
		return from.String()
	}
}

func checkSuffix(b *board.Board, m move.Move) string {
	if !b.GivesCheck(m) {
		return ""
	}

	clone := b.ShallowClone()
	clone.MakeMove(m)
	defer func() { _ = clone.UnmakeMove(m) }()

	if len(clone.GenerateMoves(make([]move.Move, 0, 48), board.Legal, board.All)) == 0 {
		return "#"
	}
	return "+"
}

// MoveNumber formats the full-move number and side-to-move marker
// conventionally prefixed to a SAN move in a game transcript, e.g.
// "14." for White's move or "14..." for Black's.
func MoveNumber(fullMove int, white bool) string {
	if white {
		return strconv.Itoa(fullMove) + "."
	}
	return strconv.Itoa(fullMove) + "..."
}
