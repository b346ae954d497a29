package er

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
)

var stacktraceDisabled = []string{"No stack, ENABLE_STACKTRACE not set"}

type err struct {
	e      error
	code   *ErrorCode
	bstack []byte
	stack  []string
}

type R interface {
	Message() string
	Stack() []string
	String() string
	Wrapped0() error
	SetWrapped(e error)
	Native() error
}

func (e *err) Stack() []string {
	if e.stack == nil {
		if e.bstack != nil {
			e.stack = strings.Split(string(e.bstack), "\n")
		} else {
			e.stack = stacktraceDisabled
		}
	}
	return e.stack
}

func (e *err) Message() string {
	return e.e.Error()
}

func (e *err) String() string {
	if e.bstack != nil {
		return fmt.Sprintf("%s\n%s", e.e.Error(), strings.Join(e.Stack(), "\n"))
	}
	return e.e.Error()
}

func (e *err) Wrapped0() error {
	return e.e
}

func (e *err) SetWrapped(ee error) {
	e.e = ee
}

func (e *err) Native() error {
	return errors.New(e.String())
}

func captureStack() []byte {
	if "" == os.Getenv("ENABLE_STACKTRACE") {
		return nil
	}
	return debug.Stack()
}

func Wrapped(err R) error {
	if err == nil {
		return nil
	}
	return err.Wrapped0()
}

func New(s string) R {
	return &err{
		e:      errors.New(s),
		bstack: captureStack(),
	}
}

func Errorf(format string, a ...interface{}) R {
	return &err{
		e:      fmt.Errorf(format, a...),
		bstack: captureStack(),
	}
}

func E(e error) R {
	if e == nil {
		return nil
	}
	return &err{
		e:      e,
		bstack: captureStack(),
	}
}

// ErrorCode is a particular failure mode, registered inside of an ErrorType.
// Errors created from a code can be tested against it with Is() and recovered
// from a generic R with ErrorType.Decode().
type ErrorCode struct {
	// Detail is a long-form description of this failure mode, it is included
	// in the message of every error created from the code.
	Detail string

	// Number is the numeric identity of the code within its ErrorType, or -1
	// if the code was registered without one. Numbers exist for codes which
	// must be matched against an external protocol.
	Number int

	name   string
	header string
	et     *typeData
}

// New creates an error of this code. The info string, if non-empty, is
// appended to the error message. If wrapped is non-nil, its message is
// appended as well and its native form becomes the wrapped error.
func (c *ErrorCode) New(info string, wrapped R) R {
	msg := c.header
	if c.Detail != "" {
		msg += ": " + c.Detail
	}
	if info != "" {
		msg += ": " + info
	}
	e := &err{
		code:   c,
		bstack: captureStack(),
	}
	if wrapped != nil {
		e.e = fmt.Errorf("%s: %s", msg, wrapped.Message())
	} else {
		e.e = errors.New(msg)
	}
	return e
}

// Default creates an error of this code with no additional information.
func (c *ErrorCode) Default() R {
	return c.New("", nil)
}

// Is returns true if the passed error was created from this code.
func (c *ErrorCode) Is(e R) bool {
	if e == nil {
		return false
	}
	if ee, ok := e.(*err); ok {
		return ee.code == c
	}
	return false
}

func (c *ErrorCode) String() string {
	return c.header
}

type typeData struct {
	name    string
	codes   map[string]*ErrorCode
	numbers map[int]*ErrorCode
}

// ErrorType is a family of related ErrorCodes. The name given to NewErrorType
// prefixes the message of every error created from one of its codes.
type ErrorType struct {
	d *typeData
}

func NewErrorType(name string) ErrorType {
	return ErrorType{d: &typeData{
		name:    name,
		codes:   make(map[string]*ErrorCode),
		numbers: make(map[int]*ErrorCode),
	}}
}

func (t ErrorType) mkCode(name string, number int, detail string) *ErrorCode {
	if _, ok := t.d.codes[name]; ok {
		panic("duplicate error code [" + name + "] in type [" + t.d.name + "]")
	}
	c := &ErrorCode{
		Detail: detail,
		Number: number,
		name:   name,
		header: t.d.name + "(" + name + ")",
		et:     t.d,
	}
	t.d.codes[name] = c
	if number >= 0 {
		if _, ok := t.d.numbers[number]; ok {
			panic(fmt.Sprintf("duplicate error number [%d] in type [%s]",
				number, t.d.name))
		}
		t.d.numbers[number] = c
	}
	return c
}

// Code registers a new ErrorCode in this type.
func (t ErrorType) Code(name string) *ErrorCode {
	return t.mkCode(name, -1, "")
}

// CodeWithDetail registers a new ErrorCode carrying a long-form description.
func (t ErrorType) CodeWithDetail(name, detail string) *ErrorCode {
	return t.mkCode(name, -1, detail)
}

// CodeWithNumber registers a new ErrorCode with a numeric identity.
func (t ErrorType) CodeWithNumber(name string, number int) *ErrorCode {
	return t.mkCode(name, number, "")
}

// CodeWithNumberAndDetail registers a new ErrorCode with both a numeric
// identity and a long-form description.
func (t ErrorType) CodeWithNumberAndDetail(name string, number int, detail string) *ErrorCode {
	return t.mkCode(name, number, detail)
}

// NumberToCode returns the code which was registered with the given number,
// or nil if there is none.
func (t ErrorType) NumberToCode(number int) *ErrorCode {
	return t.d.numbers[number]
}

// Decode returns the ErrorCode of e if e was created from a code belonging
// to this ErrorType, otherwise nil.
func (t ErrorType) Decode(e R) *ErrorCode {
	if e == nil {
		return nil
	}
	if ee, ok := e.(*err); ok && ee.code != nil && ee.code.et == t.d {
		return ee.code
	}
	return nil
}

// Is returns true if the passed error was created from any code belonging to
// this ErrorType.
func (t ErrorType) Is(e R) bool {
	return t.Decode(e) != nil
}

// GenericErrorType exists for packages with failure modes too few to justify
// an ErrorType of their own.
var GenericErrorType = NewErrorType("er.Generic")
