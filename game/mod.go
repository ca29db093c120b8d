package game

const (
	Width  = 7
	Height = 6
	Cells  = Width * Height
)

// Player is one of the two sides. There is no neutral player.
type Player uint8

const (
	PlayerA Player = iota + 1
	PlayerB
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

// Stone returns the cell value occupied by the player.
func (p Player) Stone() Cell {
	return Cell(p)
}

func (p Player) String() string {
	return p.Stone().String()
}

// ParsePlayer accepts the single letter names used on the wire.
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "A", "a":
		return PlayerA, nil
	case "B", "b":
		return PlayerB, nil
	}
	return 0, ErrInvalidPlayer
}

// Cell is the content of a single board position.
type Cell uint8

const (
	Empty Cell = 0
	StoneA     = Cell(PlayerA)
	StoneB     = Cell(PlayerB)
)

func (c Cell) String() string {
	switch c {
	case StoneA:
		return "A"
	case StoneB:
		return "B"
	default:
		return "."
	}
}

// Move is the board index of the lowest free cell of a column.
type Move int

// NoMove is returned when a board has no legal move left.
const NoMove Move = -1

// Index maps a column and a row (0 is the bottom) to a board index.
func Index(column, row int) int {
	return column + row*Width
}

// Column returns the column of the move.
func (m Move) Column() int {
	return int(m) % Width
}

// Row returns the row of the move, 0 being the bottom.
func (m Move) Row() int {
	return int(m) / Width
}

// Status of a board after win detection
type Status int

const (
	InProgress Status = iota
	Won
	Draw
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}
