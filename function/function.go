package function

import (
	"fmt"
	"strings"

	"github.com/arloliu/eeagrid/errs"
)

// TypeBigInt is the only logical type used by grid functions.
const TypeBigInt = "BIGINT"

// Impl evaluates one row. len(args) always equals the signature arity.
type Impl func(args []int64) (int64, error)

// Param names one positional argument.
type Param struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Signature is one overload of a scalar function.
type Signature struct {
	Params []Param `json:"params"`
	Return string  `json:"return"`
	Impl   Impl    `json:"-"`
}

// Arity returns the number of parameters.
func (s Signature) Arity() int {
	return len(s.Params)
}

// String renders the signature as "BIGINT NAME (a BIGINT, b BIGINT)".
func (s Signature) String(name string) string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.Name + " " + p.Type
	}

	return s.Return + " " + name + " (" + strings.Join(params, ", ") + ")"
}

// Tag is a key/value annotation of a function. Tag order is preserved.
type Tag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Scalar describes a scalar function and its overloads.
type Scalar struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Example     string      `json:"example"`
	Signatures  []Signature `json:"signatures"`
	Tags        []Tag       `json:"tags"`
}

// Resolve returns the signature taking arity arguments.
func (f Scalar) Resolve(arity int) (Signature, error) {
	for _, sig := range f.Signatures {
		if sig.Arity() == arity {
			return sig, nil
		}
	}

	return Signature{}, fmt.Errorf("%w: %s does not take %d argument(s)", errs.ErrNoMatchingSignature, f.Name, arity)
}

// Summary returns the first line of the description.
func (f Scalar) Summary() string {
	summary, _, _ := strings.Cut(f.Description, "\n")
	return summary
}

// Tag returns the value of tag key.
func (f Scalar) Tag(key string) (string, bool) {
	for _, t := range f.Tags {
		if t.Key == key {
			return t.Value, true
		}
	}

	return "", false
}

func (f Scalar) validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return errs.ErrInvalidFunctionName
	}

	if len(f.Signatures) == 0 {
		return fmt.Errorf("%w: %s has no signatures", errs.ErrNoMatchingSignature, f.Name)
	}

	seen := make(map[int]struct{}, len(f.Signatures))
	for _, sig := range f.Signatures {
		if sig.Impl == nil {
			return fmt.Errorf("%w: %s/%d has no implementation", errs.ErrNoMatchingSignature, f.Name, sig.Arity())
		}
		if _, dup := seen[sig.Arity()]; dup {
			return fmt.Errorf("%w: %s/%d", errs.ErrDuplicateSignature, f.Name, sig.Arity())
		}
		seen[sig.Arity()] = struct{}{}
	}

	return nil
}
