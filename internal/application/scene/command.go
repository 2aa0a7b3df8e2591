package scene

import "fmt"

// Kind identifies what a Command asks the manager to do.
type Kind int

const (
	// KindStay keeps the current scene.
	KindStay Kind = iota
	// KindJumpTo switches to the named scene.
	KindJumpTo
	// KindExit ends the application loop.
	KindExit
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindStay:
		return "Stay"
	case KindJumpTo:
		return "JumpTo"
	case KindExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Command is returned by Scene.Update. The zero value is Stay.
type Command struct {
	kind   Kind
	target string
}

// Stay keeps running the current scene.
func Stay() Command {
	return Command{kind: KindStay}
}

// JumpTo switches to the scene registered under name.
func JumpTo(name string) Command {
	return Command{kind: KindJumpTo, target: name}
}

// Exit ends the application loop.
func Exit() Command {
	return Command{kind: KindExit}
}

// Kind returns the command kind
func (c Command) Kind() Kind {
	return c.kind
}

// Target returns the scene name of a JumpTo command, or "" otherwise.
func (c Command) Target() string {
	return c.target
}

func (c Command) String() string {
	if c.kind == KindJumpTo {
		return fmt.Sprintf("JumpTo(%q)", c.target)
	}
	return c.kind.String()
}
