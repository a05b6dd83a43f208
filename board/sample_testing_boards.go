package board

// Sample positions used by tests in this and other packages.

// KazooBoard has ZOO across the middle of row 8, a column of letters
// hanging from it, and a wildcard H at the bottom. The rack is A*IGQKR.
const KazooBoard = "A\t*\tI\tG\tQ\tK\tR\n\n\n\n\n\n\t\t\t\t\t\t\t\tL\n\t\t\t\t\t\t\t\tO\n\t\t\t\t\t\t\tZ\tO\tO\n\t\t\t\t\t\t\t\t\tS\n\t\t\t\t\t\t\t\t\tT\n\t\t\t\t\t\t\t\t\tR\tE\tA\tL\n\t\t\t\t\t\t\t\t\tI\n\t\t\t\t\t\t\t\t\tC\n\t\t\t\t\t\t\t\t\tH*\n"

// TinyBoard is a small position with a wildcard I. It fits a 3x4 board.
const TinyBoard = "H\tA\tG\n\n\t\tO\tH\t\n\tI*\tF\n"
