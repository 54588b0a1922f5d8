package blinkenbus

// BlinkenBus address layout: 5 bit board address, 4 bit register address.
const (
	MaxBoardAddr    = 0x1f  // valid board addresses are 0 to 31
	MaxRegisterAddr = 0x1ff // 9 bit bus addresses

	RegistersPerBoard = 16
	NumIORegisters    = 15  // registers 0..14 are I/O
	ControlRegister   = 0xf // register 15 holds the board tri-state

	DefaultDevice = "/dev/blinkenbus"
)

// IOAddress returns the flat bus address of a board register.
func IOAddress(board, reg uint8) uint16 {
	return uint16(board)<<4 | uint16(reg&0xf)
}

// ControlAddress returns the flat bus address of the board control register.
func ControlAddress(board uint8) uint16 {
	return IOAddress(board, ControlRegister)
}

func ValidBoard(board int) bool {
	return board >= 0 && board <= MaxBoardAddr
}

func ValidIORegister(reg int) bool {
	return reg >= 0 && reg < NumIORegisters
}
