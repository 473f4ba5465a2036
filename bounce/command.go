package bounce

// Command is a request produced by input handling and acted on by the host
// loop once the current frame is complete.
type Command uint8

const (
	CommandNone Command = iota // ignore
	CommandQuit                // stop the loop and exit with status 0
)

// QuitKey is the key that ends the program when released.
const QuitKey = 'q'

// CommandFor maps a released key to a command. Only Q (either case) is
// recognized; every other key maps to CommandNone.
func CommandFor(key rune) Command {
	switch key {
	case QuitKey, 'Q':
		return CommandQuit
	}
	return CommandNone
}
