// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package oracle evaluates the functions implemented by crmath in
// arbitrary-precision decimal arithmetic. Its results are the reference
// that correctly rounded outputs are checked against.
package oracle

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
)

// DefaultPrecision is the number of significant decimal digits Eval
// works to when callers pass 0. It leaves a wide margin over the 17 digits
// of a float64, so the decimal result rounds to the same binary value as
// the exact one except for inputs within 10^-50 of a rounding boundary.
const DefaultPrecision = 50

// guardDigits are added to the requested precision for intermediate steps.
const guardDigits = 15

var (
	// ErrUnknownFunc is returned for a name the oracle cannot evaluate.
	ErrUnknownFunc = errors.New("oracle: unknown function")
	// ErrNoResult is returned when the exact result is not a finite real
	// number: a pole, a domain error, NaN or an infinite argument.
	ErrNoResult = errors.New("oracle: no finite result")
)

// evalFunc computes a function at the exact decimal value of x.
type evalFunc func(ed *apd.ErrDecimal, x *apd.Decimal, fx float64) (*apd.Decimal, error)

var funcs = map[string]evalFunc{
	"exp2":  evalExp2,
	"exp10": evalExp10,
	"atanh": evalAtanh,
	"cot":   evalCot,
	"tanpi": evalTanpi,
	"cotpi": evalCotpi,
}

// Names returns the base names the oracle knows.
func Names() []string {
	return []string{"atanh", "cot", "cotpi", "exp10", "exp2", "tanpi"}
}

// BaseName maps a crmath function name to the oracle name: the single
// precision variants drop their trailing "f".
func BaseName(name string) string {
	if _, ok := funcs[name]; ok {
		return name
	}
	return strings.TrimSuffix(name, "f")
}

// Eval returns the named function at x to prec significant digits. A prec
// of 0 selects DefaultPrecision, except that results with a finite decimal
// expansion (integer powers of 2 and 10) are then returned in full, so
// that exact rounding ties survive.
func Eval(name string, x float64, prec uint32) (*apd.Decimal, error) {
	base := BaseName(name)
	f, ok := funcs[base]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFunc, "%q", name)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, errors.Wrapf(ErrNoResult, "%s(%v)", name, x)
	}
	if prec == 0 {
		if d, ok := exactPower(base, x); ok {
			return d, nil
		}
		prec = DefaultPrecision
	}

	ctx := apd.BaseContext.WithPrecision(prec + guardDigits)
	ed := apd.MakeErrDecimal(ctx)
	r, err := f(&ed, Exact(x), x)
	if err != nil {
		return nil, errors.Wrapf(err, "%s(%v)", name, x)
	}
	if err := ed.Err(); err != nil {
		return nil, errors.Wrapf(err, "%s(%v)", name, x)
	}

	out := new(apd.Decimal)
	if _, err := apd.BaseContext.WithPrecision(prec).Round(out, r); err != nil {
		return nil, errors.Wrapf(err, "rounding %s(%v)", name, x)
	}
	return out, nil
}

// Correct returns the named function at x rounded to nearest in the given
// precision (32 or 64 bits). Results beyond the largest finite value are
// signed infinities.
func Correct(name string, x float64, bits int) (float64, error) {
	d, err := Eval(name, x, 0)
	if err != nil {
		return 0, err
	}
	return Round(d, bits)
}

// Round converts d to the nearest float32 or float64.
func Round(d *apd.Decimal, bits int) (float64, error) {
	if bits != 32 && bits != 64 {
		return 0, errors.AssertionFailedf("unsupported precision %d", bits)
	}
	if d.IsZero() {
		if d.Negative {
			return math.Copysign(0, -1), nil
		}
		return 0, nil
	}
	f, err := strconv.ParseFloat(d.String(), bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, errors.Wrapf(err, "parsing %s", d)
	}
	return f, nil
}

// Exact returns the decimal with the same value as x, which must be
// finite. Every binary float has a finite decimal expansion: m*2^e with
// e < 0 equals m*5^-e * 10^e. Trailing zeros are removed.
func Exact(x float64) *apd.Decimal {
	if x == 0 {
		return &apd.Decimal{Negative: math.Signbit(x)}
	}
	frac, exp := math.Frexp(math.Abs(x))
	m := int64(frac * (1 << 53))
	e := exp - 53

	coeff := apd.NewBigInt(m)
	var d *apd.Decimal
	if e >= 0 {
		coeff.Lsh(coeff, uint(e))
		d = apd.NewWithBigInt(coeff, 0)
	} else {
		five := apd.NewBigInt(5)
		five.Exp(five, apd.NewBigInt(int64(-e)), nil)
		coeff.Mul(coeff, five)
		d = apd.NewWithBigInt(coeff, int32(e))
	}
	d.Reduce(d)
	d.Negative = math.Signbit(x)
	return d
}
