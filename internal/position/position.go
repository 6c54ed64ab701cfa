//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package position represents an immutable chess position: two sides'
// piece bitboards, side to move, castling rights, en-passant target,
// the fifty-move counter, the full-move counter, and a Zobrist hash
// with its repetition history (§3, §4.4). Positions are never mutated
// in place except for the repetition stack, which Evaluate (package
// movegen) appends to as a position is visited.
package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	. "github.com/kopfjaeger/branchmate/pkg/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is two sides x six piece bitboards plus side-to-move,
// castling rights, en-passant target, halfmove clock, fullmove number,
// a Zobrist hash and its repetition stack (§3).
type Position struct {
	pieces [ColorLength][PtLength]Bitboard
	occ    [ColorLength]Bitboard
	board  [SqLength]Piece

	sideToMove     Color
	castlingRights CastlingRights
	epSquare       Square
	halfmoveClock  int
	fullmoveNumber int

	kingSquare [ColorLength]Square

	hash       Key
	repetition repetitionStack
}

// New returns the standard game-opening position.
func New() Position {
	p, err := NewFromFen(StartFen)
	if err != nil {
		panic(fmt.Sprintf("start fen is malformed: %v", err))
	}
	return p
}

var (
	regexFenPos          = regexp.MustCompile("^[0-8pPnNbBrRqQkK/]+$")
	regexSideToMove      = regexp.MustCompile("^[wb]$")
	regexCastlingRights  = regexp.MustCompile("^(K?Q?k?q?|-)$")
	regexEnPassantSquare = regexp.MustCompile("^([a-h][1-8]|-)$")
)

// NewFromFen parses the standard six-field FEN (§6). Only the piece
// placement field is required; the remaining five fall back to the
// same defaults the standard specifies (white to move, no rights, no
// en-passant target, clocks at zero/one).
func NewFromFen(fen string) (Position, error) {
	var p Position
	p.epSquare = SqNone

	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) == 0 {
		return p, errors.New("fen must not be empty")
	}
	if !regexFenPos.MatchString(fields[0]) {
		return p, errors.New("fen piece placement contains invalid characters")
	}

	sq := SqA8
	for _, c := range fields[0] {
		switch {
		case c >= '1' && c <= '8':
			sq = sq + Square(int(c-'0')*int(East))
		case c == '/':
			sq -= Square(2 * North)
		default:
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return p, fmt.Errorf("invalid piece character: %c", c)
			}
			p.putPiece(piece, sq)
			sq++
		}
	}
	if sq != SqA2 {
		return p, errors.New("fen piece placement did not cover exactly 64 squares")
	}

	p.fullmoveNumber = 1

	if len(fields) >= 2 {
		if !regexSideToMove.MatchString(fields[1]) {
			return p, errors.New("fen side-to-move field is invalid")
		}
		if fields[1] == "b" {
			p.sideToMove = Black
			p.hash ^= zobristBase.sideToMove
		}
	}

	if len(fields) >= 3 {
		if !regexCastlingRights.MatchString(fields[2]) {
			return p, errors.New("fen castling rights field is invalid")
		}
		if fields[2] != "-" {
			for _, c := range fields[2] {
				switch c {
				case 'K':
					p.castlingRights.Add(CastlingWhiteOO)
				case 'Q':
					p.castlingRights.Add(CastlingWhiteOOO)
				case 'k':
					p.castlingRights.Add(CastlingBlackOO)
				case 'q':
					p.castlingRights.Add(CastlingBlackOOO)
				}
			}
		}
		p.hash ^= zobristBase.castlingRights[p.castlingRights]
	}

	if len(fields) >= 4 {
		if !regexEnPassantSquare.MatchString(fields[3]) {
			return p, errors.New("fen en-passant field is invalid")
		}
		if fields[3] != "-" {
			p.epSquare = MakeSquare(fields[3])
			p.hash ^= zobristBase.enPassant[p.epSquare]
		}
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return p, fmt.Errorf("fen halfmove clock: %w", err)
		}
		p.halfmoveClock = n
	}

	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return p, fmt.Errorf("fen fullmove number: %w", err)
		}
		if n == 0 {
			n = 1
		}
		p.fullmoveNumber = n
	}

	return p, nil
}

// Fen serializes the position back to the standard six-field FEN. The
// serializer round-trips any position the parser accepted (§6, §8).
func (p *Position) Fen() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		sb.WriteString("/")
	}
	sb.WriteString(" ")
	sb.WriteString(p.sideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(p.castlingRights.String())
	sb.WriteString(" ")
	sb.WriteString(p.epSquare.String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))
	return sb.String()
}

// String renders the FEN followed by an 8x8 board diagram.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString(p.Fen())
	sb.WriteString("\n+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			sb.WriteString("| ")
			sb.WriteString(p.board[SquareOf(f, r)].String())
			sb.WriteString(" ")
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}

// SideToMove returns the player to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the position's castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the en-passant target square, or SqNone.
func (p *Position) EnPassantSquare() Square { return p.epSquare }

// HalfmoveClock returns the fifty-move counter.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the full-move counter.
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// Hash returns the position's current Zobrist key.
func (p *Position) Hash() Key { return p.hash }

// PiecesBb returns the bitboard of c's pieces of type pt.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard { return p.pieces[c][pt] }

// Occupancy returns the bitboard of all of c's pieces (§4.4).
func (p *Position) Occupancy(c Color) Bitboard { return p.occ[c] }

// TotalOccupancy returns the bitboard of every occupied square (§4.4).
func (p *Position) TotalOccupancy() Bitboard { return p.occ[White] | p.occ[Black] }

// PieceAt returns the piece type and color occupying sq, and whether
// the square is occupied at all (§4.4's piece_at).
func (p *Position) PieceAt(sq Square) (PieceType, Color, bool) {
	pc := p.board[sq]
	if pc == PieceNone {
		return PtNone, White, false
	}
	return pc.TypeOf(), pc.ColorOf(), true
}

// PushRepetition appends the position's own hash onto its repetition
// stack. Evaluate (package movegen) calls this exactly once per
// position it evaluates (§4.5 intro: the only mutation an otherwise
// immutable Position undergoes).
func (p *Position) PushRepetition() {
	p.repetition.add(p.hash)
}

// Repetitions returns how many times hash h currently appears on the
// repetition stack, using the fork-join scan (§5 point 3) once the
// stack is big enough to be worth splitting.
func (p *Position) Repetitions(h Key) int {
	if p.repetition.count < repetitionParallelThreshold {
		return p.repetition.repetitions(h)
	}
	return p.repetition.repetitionsParallel(h)
}

// CastlingRightsLost maps each of the four rook-origin squares to the
// castling right a move from or onto it invalidates (§4.6). King moves
// drop both of the mover's rights directly rather than through this
// table.
var CastlingRightsLost = func() [SqLength]CastlingRights {
	var t [SqLength]CastlingRights
	t[SqA1] = CastlingWhiteOOO
	t[SqH1] = CastlingWhiteOO
	t[SqA8] = CastlingBlackOOO
	t[SqH8] = CastlingBlackOO
	return t
}()

// SetCastlingRights replaces the position's castling rights, keeping
// the Zobrist hash consistent. Exported for package movegen's Apply.
func (p *Position) SetCastlingRights(cr CastlingRights) { p.setCastlingRights(cr) }

// ClearEnPassant clears the en-passant target, keeping the Zobrist
// hash consistent. Exported for package movegen's Apply.
func (p *Position) ClearEnPassant() { p.clearEnPassant() }

// SetEnPassant sets the en-passant target square, keeping the Zobrist
// hash consistent. Exported for package movegen's Apply.
func (p *Position) SetEnPassant(sq Square) { p.setEnPassant(sq) }

// PutPiece places piece on sq. Exported for package movegen's Apply;
// the caller is responsible for sq being empty.
func (p *Position) PutPiece(piece Piece, sq Square) { p.putPiece(piece, sq) }

// RemovePiece removes and returns the piece on sq. Exported for
// package movegen's Apply; the caller is responsible for sq being
// occupied.
func (p *Position) RemovePiece(sq Square) Piece { return p.removePiece(sq) }

// MovePiece relocates the piece on from to the (empty) to square.
// Exported for package movegen's Apply.
func (p *Position) MovePiece(from, to Square) { p.movePiece(from, to) }

// SetSideToMove flips or sets the side to move, keeping the Zobrist
// hash consistent. Exported for package movegen's Apply.
func (p *Position) SetSideToMove(c Color) {
	if c == p.sideToMove {
		return
	}
	p.sideToMove = c
	p.hash ^= zobristBase.sideToMove
}

// SetHalfmoveClock sets the fifty-move counter. Exported for package
// movegen's Apply.
func (p *Position) SetHalfmoveClock(n int) { p.halfmoveClock = n }

// SetFullmoveNumber sets the full-move counter. Exported for package
// movegen's Apply.
func (p *Position) SetFullmoveNumber(n int) { p.fullmoveNumber = n }

func (p *Position) putPiece(piece Piece, sq Square) {
	c, pt := piece.ColorOf(), piece.TypeOf()
	p.board[sq] = piece
	p.pieces[c][pt] = p.pieces[c][pt].Set(sq)
	p.occ[c] = p.occ[c].Set(sq)
	if pt == King {
		p.kingSquare[c] = sq
	}
	p.hash ^= zobristBase.pieces[piece][sq]
}

func (p *Position) removePiece(sq Square) Piece {
	piece := p.board[sq]
	c, pt := piece.ColorOf(), piece.TypeOf()
	p.board[sq] = PieceNone
	p.pieces[c][pt] = p.pieces[c][pt].Clear(sq)
	p.occ[c] = p.occ[c].Clear(sq)
	p.hash ^= zobristBase.pieces[piece][sq]
	return piece
}

func (p *Position) movePiece(from, to Square) {
	p.putPiece(p.removePiece(from), to)
}

func (p *Position) setCastlingRights(cr CastlingRights) {
	if cr == p.castlingRights {
		return
	}
	p.hash ^= zobristBase.castlingRights[p.castlingRights]
	p.castlingRights = cr
	p.hash ^= zobristBase.castlingRights[p.castlingRights]
}

func (p *Position) clearEnPassant() {
	if p.epSquare != SqNone {
		p.hash ^= zobristBase.enPassant[p.epSquare]
		p.epSquare = SqNone
	}
}

func (p *Position) setEnPassant(sq Square) {
	p.clearEnPassant()
	p.epSquare = sq
	p.hash ^= zobristBase.enPassant[sq]
}
