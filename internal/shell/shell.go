// File: internal/shell/shell.go
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xkilldash9x/caesar-cli/internal/cipher"
)

// ErrInvalidShift is returned by ParseShift when the input is not an integer.
var ErrInvalidShift = errors.New("shift is not a valid integer")

// User-facing messages.
const (
	msgInvalidShift  = "Error: Please enter a valid number for shift"
	msgShiftRange    = "Error: Shift must be between 0 and 25"
	msgInvalidChoice = "Invalid choice. Please enter 1, 2, 3, or 4."
	msgFarewell      = "Thank you for using Caesar Cipher Program!"
	msgChoicePrompt  = "Enter your choice (1-4): "
)

var rule = strings.Repeat("=", 50)
var thinRule = strings.Repeat("-", 50)

// Shell is the interactive menu front end over the cipher package.
type Shell struct {
	in        *bufio.Reader
	out       io.Writer
	logger    *zap.Logger
	sessionID string
}

// New creates a Shell reading user input from in and writing to out.
func New(in io.Reader, out io.Writer, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	sessionID := uuid.New().String()
	return &Shell{
		in:        bufio.NewReader(in),
		out:       out,
		logger:    logger.Named("shell").With(zap.String("session_id", sessionID)),
		sessionID: sessionID,
	}
}

// SessionID identifies this shell run in the logs.
func (s *Shell) SessionID() string { return s.sessionID }

// Run prints the banner and serves menu actions until the user exits, input
// ends, or ctx is cancelled. Exit and end of input both return nil.
func (s *Shell) Run(ctx context.Context) error {
	s.logger.Debug("Interactive session started")
	s.printBanner()

	for {
		if err := ctx.Err(); err != nil {
			s.logger.Debug("Interactive session cancelled", zap.Error(err))
			return err
		}

		s.printMenu()
		choice, err := s.readLine(msgChoicePrompt)
		if err != nil {
			return s.endOfInput(err)
		}

		var done bool
		switch strings.TrimSpace(choice) {
		case "1":
			err = s.encrypt()
		case "2":
			err = s.decrypt()
		case "3":
			err = s.bruteForce()
		case "4":
			s.println("\n" + msgFarewell)
			done = true
		default:
			s.logger.Debug("Invalid menu choice")
			s.println("\n" + msgInvalidChoice)
		}
		if err != nil {
			return s.endOfInput(err)
		}
		if done {
			s.logger.Debug("Interactive session finished")
			return nil
		}
	}
}

func (s *Shell) encrypt() error {
	text, err := s.readLine("\nEnter text to encrypt: ")
	if err != nil {
		return err
	}
	shift, ok, err := s.readShift("Enter shift value (0-25): ")
	if err != nil || !ok {
		return err
	}

	s.logger.Debug("Encrypting", zap.Int("shift", shift), zap.Int("length", len(text)))
	s.printf("\nOriginal text:  %s\n", text)
	s.printf("Encrypted text: %s\n", cipher.Encrypt(text, shift))
	s.printf("Shift used:     %d\n", shift)
	return nil
}

func (s *Shell) decrypt() error {
	text, err := s.readLine("\nEnter text to decrypt: ")
	if err != nil {
		return err
	}
	shift, ok, err := s.readShift("Enter shift value used for encryption: ")
	if err != nil || !ok {
		return err
	}

	s.logger.Debug("Decrypting", zap.Int("shift", shift), zap.Int("length", len(text)))
	s.printf("\nEncrypted text: %s\n", text)
	s.printf("Decrypted text: %s\n", cipher.Decrypt(text, shift))
	s.printf("Shift used:     %d\n", shift)
	return nil
}

func (s *Shell) bruteForce() error {
	text, err := s.readLine("\nEnter text to decrypt: ")
	if err != nil {
		return err
	}

	s.logger.Debug("Brute forcing", zap.Int("length", len(text)))
	s.println("\nTrying all possible shifts:")
	s.println(thinRule)
	for _, c := range cipher.BruteForce(text) {
		s.printf("Shift %2d: %s\n", c.Shift, c.Text)
	}
	s.println(thinRule)
	s.println("Look for the result that makes sense!")
	return nil
}

// readShift prompts for a shift. ok is false when the input was rejected; the
// message has already been printed and the caller returns to the menu.
func (s *Shell) readShift(prompt string) (shift int, ok bool, err error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return 0, false, err
	}

	shift, err = ParseShift(line)
	if err != nil {
		s.logger.Debug("Rejected shift input", zap.Error(err))
		s.println(ShiftErrorMessage(err))
		return 0, false, nil
	}
	return shift, true, nil
}

// readLine prints prompt and returns the next line without its terminator.
// Lines may be any length. It returns io.EOF once input is exhausted; a final
// line without a newline is still returned first.
func (s *Shell) readLine(prompt string) (string, error) {
	s.printf("%s", prompt)
	line, err := s.in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
	case errors.Is(err, io.EOF):
		return "", io.EOF
	default:
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (s *Shell) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		s.logger.Debug("Input closed; ending session")
		s.println("")
		return nil
	}
	s.logger.Error("Interactive session aborted", zap.Error(err))
	return err
}

func (s *Shell) printBanner() {
	s.println(rule)
	s.println("CAESAR CIPHER PROGRAM")
	s.println(rule)
	s.println("")
}

func (s *Shell) printMenu() {
	s.println("\nChoose an option:")
	s.println("1. Encrypt text")
	s.println("2. Decrypt text (with known shift)")
	s.println("3. Brute force decrypt (try all shifts)")
	s.println("4. Exit")
	s.println("")
}

func (s *Shell) println(line string) { fmt.Fprintln(s.out, line) }

func (s *Shell) printf(format string, args ...any) { fmt.Fprintf(s.out, format, args...) }

// ParseShift parses a user-entered shift and checks it lies in [0, 25].
// Errors wrap ErrInvalidShift or cipher.ErrShiftOutOfRange.
func ParseShift(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	shift, err := strconv.Atoi(trimmed)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s", cipher.ErrShiftOutOfRange, trimmed)
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidShift, trimmed)
	}
	if err := cipher.ValidateShift(shift); err != nil {
		return 0, err
	}
	return shift, nil
}

// ShiftErrorMessage maps a ParseShift error to the text shown to the user.
func ShiftErrorMessage(err error) string {
	if errors.Is(err, cipher.ErrShiftOutOfRange) {
		return msgShiftRange
	}
	return msgInvalidShift
}
