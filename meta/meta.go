// meta/meta.go
package meta

// DefaultCrossArm is the arm thickness of the English board.
const DefaultCrossArm = 3

// DefaultTriangleArm is the number of rows of the classic 15-hole triangle.
const DefaultTriangleArm = 5

// MaxMoves caps a single game loop.
const MaxMoves = 10000

// GoRoutines bounds how many games a batch runs at once.
const GoRoutines = 8

// DefaultGames is the batch size for random playouts.
const DefaultGames = 100
