package gocalc

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/op/go-logging"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input string
		want  Value
	}{
		{input: "3", want: IntValue(3)},
		{input: "1+2", want: IntValue(3)},
		{input: "1 +    2", want: IntValue(3)},
		{input: "7-10", want: IntValue(-3)},
		{input: "6*7", want: IntValue(42)},
		{input: "8-4-2", want: IntValue(2)},
		{input: "16/4/2", want: FloatValue(2)},
		{input: "2+3*4", want: IntValue(14)},
		{input: "(2+3)*4", want: IntValue(20)},
		{input: "--5", want: IntValue(5)},
		{input: "-(-5)", want: IntValue(5)},
		{input: "+-3", want: IntValue(-3)},
		{input: "6/3", want: FloatValue(2)},
		{input: "7/2", want: FloatValue(3.5)},
		{input: "-7/2", want: FloatValue(-3.5)},
		{input: "1/2*4", want: FloatValue(2)},
		{input: "2*(3/4)", want: FloatValue(1.5)},
		{input: "1/4+1", want: FloatValue(1.25)},
		{input: "1-1/4", want: FloatValue(0.75)},
		{input: "-(1/2)", want: FloatValue(-0.5)},
		{input: "0/5", want: FloatValue(0)},
		{input: "7 + 3 * (10 / (12 / (3 + 1) - 1))", want: FloatValue(22)},
		{input: "-9223372036854775807-1", want: IntValue(-9223372036854775808)},
	}
	for _, test := range tests {
		got, err := Evaluate(test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("value mismatch for %q (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestEvaluateBinaryOps(t *testing.T) {
	operands := []int64{0, 1, -1, 3, 17, -25, 1000}
	for _, a := range operands {
		for _, b := range operands {
			cases := []struct {
				op   string
				want Value
			}{
				{op: "+", want: IntValue(a + b)},
				{op: "-", want: IntValue(a - b)},
				{op: "*", want: IntValue(a * b)},
			}
			if b != 0 {
				cases = append(cases, struct {
					op   string
					want Value
				}{op: "/", want: FloatValue(float64(a) / float64(b))})
			}
			for _, c := range cases {
				input := fmt.Sprintf("(%d) %s (%d)", a, c.op, b)
				got, err := Evaluate(input)
				if err != nil {
					t.Errorf("%q: %v", input, err)
					continue
				}
				if !got.Equal(c.want) {
					t.Errorf("want %v for %q but got %v", c.want, input, got)
				}
			}
		}
	}
}

// huge is about 2.75e303, a float that one more large factor overflows.
var huge = "1/1" + strings.Repeat("*9223372036854775807", 16)

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
	}{
		{input: "5/0", kind: ErrDivisionByZero},
		{input: "0/0", kind: ErrDivisionByZero},
		{input: "5/(2-2)", kind: ErrDivisionByZero},
		{input: "1/(1/2-1/2)", kind: ErrDivisionByZero},
		{input: "(1/0)+(2/0)", kind: ErrDivisionByZero},
		{input: "(1+2", kind: ErrSyntax},
		{input: "1+", kind: ErrSyntax},
		{input: "1+*2", kind: ErrSyntax},
		{input: "", kind: ErrSyntax},
		{input: "1+2 garbage", kind: ErrSyntax},
		{input: "1+@", kind: ErrInvalidCharacter},
		{input: "9223372036854775807+1", kind: ErrRange},
		{input: "-9223372036854775807-2", kind: ErrRange},
		{input: "3037000500*3037000500", kind: ErrRange},
		{input: "-(-9223372036854775807-1)", kind: ErrRange},
		{input: "99999999999999999999", kind: ErrRange},
		{input: "1/1" + strings.Repeat("*9223372036854775807", 17), kind: ErrRange},
		{input: "-1/1" + strings.Repeat("*9223372036854775807", 17), kind: ErrRange},
		{input: "(" + huge + "*60000)+(" + huge + "*60000)", kind: ErrRange},
		{input: "(-" + huge + "*60000)-(" + huge + "*60000)", kind: ErrRange},
		{input: "1/(1/9223372036854775807" + strings.Repeat("/9223372036854775807", 16) + ")", kind: ErrRange},
	}
	for _, test := range tests {
		got, err := Evaluate(test.input)
		if err == nil {
			t.Errorf("want %v for %q but got value %v", test.kind, test.input, got)
			continue
		}
		if !errors.Is(err, test.kind) {
			t.Errorf("want %v for %q but got %v", test.kind, test.input, err)
		}
	}
}

func TestEvaluateLenient(t *testing.T) {
	got, err := Evaluate("1+2 garbage", WithLenient())
	if err == nil {
		t.Fatalf("want error from the look-ahead but got %v", got)
	}

	got, err = Evaluate("1+2 3", WithLenient())
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(IntValue(3)) {
		t.Errorf("want 3 but got %v", got)
	}
}

type bogus struct{}

func (bogus) node()          {}
func (bogus) String() string { return "bogus" }

func TestEvalInternalError(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{name: "unknown node", node: bogus{}},
		{name: "nil node", node: nil},
		{name: "nil number", node: (*Number)(nil)},
		{name: "bad unary operator", node: &UnaryOp{Op: TokenMul, Operand: &Number{Value: 1}}},
		{name: "bad binary operator", node: &BinaryOp{Left: &Number{Value: 1}, Op: TokenLParen, Right: &Number{Value: 2}}},
		{name: "unknown operand", node: &UnaryOp{Op: TokenMinus, Operand: bogus{}}},
	}
	for _, test := range tests {
		_, err := Eval(test.node)
		if !errors.Is(err, ErrInternal) {
			t.Errorf("%s: want ErrInternal but got %v", test.name, err)
		}
	}
}

func TestEvalLeftErrorFirst(t *testing.T) {
	node := &BinaryOp{
		Left: &BinaryOp{
			Left:  &Number{Value: 1},
			Op:    TokenDiv,
			Right: &Number{Value: 0},
		},
		Op:    TokenPlus,
		Right: bogus{},
	}
	_, err := Eval(node)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("want ErrDivisionByZero but got %v", err)
	}

	node.Left, node.Right = node.Right, node.Left
	_, err = Eval(node)
	if !errors.Is(err, ErrInternal) {
		t.Errorf("want ErrInternal but got %v", err)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	inputs := []string{"2+3*4", "16/4/2", "5/0", "(1+2", "1+@", ""}
	for _, input := range inputs {
		v1, err1 := Evaluate(input)
		v2, err2 := Evaluate(input)
		if !v1.Equal(v2) {
			t.Errorf("%q: %v != %v", input, v1, v2)
		}
		if (err1 == nil) != (err2 == nil) {
			t.Errorf("%q: %v != %v", input, err1, err2)
			continue
		}
		if err1 != nil && err1.Error() != err2.Error() {
			t.Errorf("%q: %v != %v", input, err1, err2)
		}
	}
}

func TestEvaluateConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := Evaluate(fmt.Sprintf("%d * (2 + 3) - %d", i, i))
			if err != nil {
				t.Error(err)
				return
			}
			if want := IntValue(int64(4 * i)); !got.Equal(want) {
				t.Errorf("want %v but got %v", want, got)
			}
		}(i)
	}
	wg.Wait()
}

func TestInterpreter(t *testing.T) {
	p, err := NewParser(NewLexer("(3 + 5) * 2"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := NewInterpreter(p).Interpret()
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(IntValue(16)) {
		t.Errorf("want 16 but got %v", got)
	}
}

func TestEvaluateFloatStaysFinite(t *testing.T) {
	got, err := Evaluate(huge)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsFloat() || got.Float() < 1e300 {
		t.Errorf("want a large finite float but got %v", got)
	}
}

func TestLoggingQuietByDefault(t *testing.T) {
	if got := logging.GetLevel("gocalc"); got != logging.WARNING {
		t.Errorf("want WARNING but got %v", got)
	}
	if log.IsEnabledFor(logging.DEBUG) {
		t.Error("debug logging must be off by default")
	}
}
