// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// Package move declares the 16-bit packed Move representation and its
// flag vocabulary.
package move

import "github.com/kestrelchess/kestrel/pkg/square"

// Move is a 16-bit packed chess move.
//
// Format: MSB [flags:4][dst:6][src:6] LSB.
//
// The null move is the all-zero value; it is never produced for a real
// move since a real move always has src != dst.
type Move uint16

const Null Move = 0

const (
	srcWidth   = 6
	dstWidth   = 6
	flagWidth  = 4
	srcOffset  = 0
	dstOffset  = srcOffset + srcWidth
	flagOffset = dstOffset + dstWidth

	srcMask  = (1 << srcWidth) - 1
	dstMask  = (1 << dstWidth) - 1
	flagMask = (1 << flagWidth) - 1
)

// Flag classifies the kind of a move. Flag values with the capture bit
// (0x4) set are captures; promotions have the 0x8 bit set (values
// 8-11), ORed with the capture bit for their capturing variants (12-15).
type Flag uint8

const (
	FlagQuiet Flag = iota
	FlagDoublePawnPush
	FlagKingCastle
	FlagQueenCastle
	FlagCapture
	FlagEnPassant
	_reserved6
	_reserved7
	FlagPromoKnight
	FlagPromoBishop
	FlagPromoRook
	FlagPromoQueen
	FlagPromoCaptureKnight
	FlagPromoCaptureBishop
	FlagPromoCaptureRook
	FlagPromoCaptureQueen
)

// New packs a move from its fields.
func New(src, dst square.Square, flag Flag) Move {
	return Move(src)<<srcOffset | Move(dst)<<dstOffset | Move(flag)<<flagOffset
}

// Source returns the move's source square.
func (m Move) Source() square.Square {
	return square.Square((m >> srcOffset) & srcMask)
}

// Target returns the move's destination square.
func (m Move) Target() square.Square {
	return square.Square((m >> dstOffset) & dstMask)
}

// Flag returns the move's flag nibble.
func (m Move) Flag() Flag {
	return Flag((m >> flagOffset) & flagMask)
}

// captureBit and promotionBit are set within Flag's nibble for every
// capturing (resp. promoting) flag value; see the Flag constants above.
const (
	captureBit   = Flag(0b0100)
	promotionBit = Flag(0b1000)
)

// IsCapture reports whether the move removes an enemy piece, including
// en-passant and capturing promotions.
func (m Move) IsCapture() bool {
	return m.Flag()&captureBit != 0
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag()&promotionBit != 0
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

// IsCastle reports whether the move is a king- or queen-side castle.
func (m Move) IsCastle() bool {
	f := m.Flag()
	return f == FlagKingCastle || f == FlagQueenCastle
}

// IsDoublePawnPush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool {
	return m.Flag() == FlagDoublePawnPush
}

// IsQuiet reports whether the move is neither a capture nor a promotion.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// PromotedType returns the promotion target as a promoType (knight,
// bishop, rook or queen, in flag order), valid only when IsPromotion is
// true.
func (m Move) PromotedType() promoType {
	return promoType(m.Flag() & 0b0011)
}

// promoType enumerates the four promotion targets in flag order.
type promoType uint8

const (
	PromoKnight promoType = iota
	PromoBishop
	PromoRook
	PromoQueen
)

// NewPromotion packs a promotion move to the given promoted type.
func NewPromotion(src, dst square.Square, promo promoType, capture bool) Move {
	flag := FlagPromoKnight + Flag(promo)
	if capture {
		flag |= captureBit
	}
	return New(src, dst, flag)
}

// String renders the move in long algebraic (UCI) notation, e.g. "e2e4",
// "e1g1", "d7d8q". The null move renders as "0000".
func (m Move) String() string {
	if m == Null {
		return "0000"
	}

	s := m.Source().String() + m.Target().String()
	if m.IsPromotion() {
		const letters = "nbrq"
		s += string(letters[m.PromotedType()])
	}
	return s
}
