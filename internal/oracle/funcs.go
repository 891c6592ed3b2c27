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

package oracle

import (
	"math"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
)

// piDigits is pi to 120 significant digits. Trigonometric reduction of an
// argument of magnitude 10^d keeps about 120-d correct digits.
const piDigits = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798214808651328230665"

// reducePrecision is the working precision of the trigonometric argument
// reduction, slightly above the digits of piDigits.
const reducePrecision = 130

// maxTrigArg bounds the arguments whose reduction keeps enough digits.
const maxTrigArg = 1e40

// Arguments beyond these produce results far outside the float64 range;
// they evaluate to a representative tiny or huge value instead of running
// exp on an argument that would overflow the decimal exponent.
const (
	exp2Max  = 1100
	exp2Min  = -1200
	exp10Max = 400
	exp10Min = -400
)

var pi, halfPi *apd.Decimal

func init() {
	var err error
	pi, _, err = apd.NewFromString(piDigits)
	if err != nil {
		panic(err)
	}
	halfPi = new(apd.Decimal)
	if _, err := apd.BaseContext.WithPrecision(reducePrecision).Quo(halfPi, pi, apd.New(2, 0)); err != nil {
		panic(err)
	}
}

// exactPower returns 2^n or 10^n for an integer argument n in the range
// the evaluators handle. Both have finite decimal expansions.
func exactPower(base string, fx float64) (*apd.Decimal, bool) {
	if fx != math.Trunc(fx) {
		return nil, false
	}
	switch base {
	case "exp2":
		if fx < exp2Min || fx > exp2Max {
			return nil, false
		}
		return pow2(int64(fx)), true
	case "exp10":
		if fx < exp10Min || fx > exp10Max {
			return nil, false
		}
		return apd.New(1, int32(fx)), true
	}
	return nil, false
}

// pow2 returns 2^n exactly; for n < 0 that is 5^-n * 10^n.
func pow2(n int64) *apd.Decimal {
	if n >= 0 {
		c := apd.NewBigInt(1)
		c.Lsh(c, uint(n))
		return apd.NewWithBigInt(c, 0)
	}
	c := apd.NewBigInt(5)
	c.Exp(c, apd.NewBigInt(-n), nil)
	return apd.NewWithBigInt(c, int32(n))
}

func evalExp2(ed *apd.ErrDecimal, x *apd.Decimal, fx float64) (*apd.Decimal, error) {
	switch {
	case fx > exp2Max:
		return apd.New(1, 400), nil
	case fx < exp2Min:
		return apd.New(1, -400), nil
	case fx == math.Trunc(fx):
		return pow2(int64(fx)), nil
	}
	ln2 := ed.Ln(new(apd.Decimal), apd.New(2, 0))
	y := ed.Mul(new(apd.Decimal), x, ln2)
	return ed.Exp(new(apd.Decimal), y), nil
}

func evalExp10(ed *apd.ErrDecimal, x *apd.Decimal, fx float64) (*apd.Decimal, error) {
	switch {
	case fx > exp10Max:
		return apd.New(1, 400), nil
	case fx < exp10Min:
		return apd.New(1, -400), nil
	case fx == math.Trunc(fx):
		// 10^23 is a rounding tie.
		return apd.New(1, int32(fx)), nil
	}
	ln10 := ed.Ln(new(apd.Decimal), apd.New(10, 0))
	y := ed.Mul(new(apd.Decimal), x, ln10)
	return ed.Exp(new(apd.Decimal), y), nil
}

// evalAtanh computes log((1+x)/(1-x))/2. The working precision grows with
// the number of leading zeros of x, since 1+x must keep all digits of x.
func evalAtanh(ed *apd.ErrDecimal, x *apd.Decimal, fx float64) (*apd.Decimal, error) {
	ax := math.Abs(fx)
	if ax >= 1 {
		return nil, ErrNoResult
	}
	if ax == 0 {
		return new(apd.Decimal).Set(x), nil
	}
	extra := uint32(math.Max(0, -math.Floor(math.Log10(ax))))
	wide := apd.MakeErrDecimal(ed.Ctx.WithPrecision(ed.Ctx.Precision + extra))
	one := apd.New(1, 0)
	num := wide.Add(new(apd.Decimal), one, x)
	den := wide.Sub(new(apd.Decimal), one, x)
	q := wide.Quo(new(apd.Decimal), num, den)
	r := wide.Ln(new(apd.Decimal), q)
	r = wide.Quo(r, r, apd.New(2, 0))
	if err := wide.Err(); err != nil {
		return nil, err
	}
	return r, nil
}

// evalCot reduces x by pi/2: x = k*pi/2 + r with |r| <= pi/4. Then
// cot(x) is cos(r)/sin(r) for even k and -sin(r)/cos(r) for odd k.
func evalCot(ed *apd.ErrDecimal, x *apd.Decimal, fx float64) (*apd.Decimal, error) {
	if fx == 0 {
		return nil, ErrNoResult
	}
	if math.Abs(fx) > maxTrigArg {
		return nil, errors.Newf("argument %v beyond reduction range", fx)
	}
	ctx := apd.BaseContext.WithPrecision(reducePrecision)
	k, r := new(apd.Decimal), new(apd.Decimal)
	if _, err := ctx.Quo(k, x, halfPi); err != nil {
		return nil, err
	}
	if _, err := ctx.RoundToIntegralValue(k, k); err != nil {
		return nil, err
	}
	if _, err := ctx.Mul(r, k, halfPi); err != nil {
		return nil, err
	}
	if _, err := ctx.Sub(r, x, r); err != nil {
		return nil, err
	}
	odd, err := isOdd(ctx, k)
	if err != nil {
		return nil, err
	}

	sin, cos := sinCos(ed, r)
	if odd {
		q := ed.Quo(new(apd.Decimal), sin, cos)
		return q.Neg(q), nil
	}
	return ed.Quo(new(apd.Decimal), cos, sin), nil
}

// evalTanpi uses the exact fraction z = x - round(x) in [-1/2, 1/2]. For
// |z| > 1/4 it evaluates cot(pi*(1/2-|z|)) instead, which keeps full
// relative precision near the poles.
func evalTanpi(ed *apd.ErrDecimal, _ *apd.Decimal, fx float64) (*apd.Decimal, error) {
	z := fx - math.RoundToEven(fx)
	switch az := math.Abs(z); {
	case az == 0.5:
		return nil, ErrNoResult
	case az > 0.25:
		c := cotOfPiFrac(ed, Exact(0.5-az))
		if z < 0 {
			c.Neg(c)
		}
		return c, nil
	}
	return tanOfPiFrac(ed, Exact(z)), nil
}

// evalCotpi mirrors evalTanpi with the roles of the two ratios swapped.
func evalCotpi(ed *apd.ErrDecimal, _ *apd.Decimal, fx float64) (*apd.Decimal, error) {
	z := fx - math.RoundToEven(fx)
	switch az := math.Abs(z); {
	case az == 0:
		return nil, ErrNoResult
	case az > 0.25:
		t := tanOfPiFrac(ed, Exact(0.5-az))
		if z < 0 {
			t.Neg(t)
		}
		return t, nil
	}
	return cotOfPiFrac(ed, Exact(z)), nil
}

func tanOfPiFrac(ed *apd.ErrDecimal, z *apd.Decimal) *apd.Decimal {
	y := ed.Mul(new(apd.Decimal), z, pi)
	sin, cos := sinCos(ed, y)
	return ed.Quo(new(apd.Decimal), sin, cos)
}

func cotOfPiFrac(ed *apd.ErrDecimal, z *apd.Decimal) *apd.Decimal {
	y := ed.Mul(new(apd.Decimal), z, pi)
	sin, cos := sinCos(ed, y)
	return ed.Quo(new(apd.Decimal), cos, sin)
}

// maxTerms caps the Taylor loop; |y| <= pi/4 converges long before.
const maxTerms = 400

// sinCos returns sin(y) and cos(y) from their Taylor series. It expects
// |y| <= pi/4. Terms are summed until they fall below the working
// precision relative to y.
func sinCos(ed *apd.ErrDecimal, y *apd.Decimal) (sin, cos *apd.Decimal) {
	sin, cos = new(apd.Decimal), apd.New(1, 0)
	if y.IsZero() {
		return sin, cos
	}
	limit := adjustedExponent(y) - int64(ed.Ctx.Precision) - 5
	t := apd.New(1, 0) // y^n/n!
	for n := int64(1); n < maxTerms; n++ {
		ed.Mul(t, t, y)
		ed.Quo(t, t, apd.New(n, 0))
		if n > 1 && adjustedExponent(t) < limit {
			break
		}
		switch n % 4 {
		case 0:
			ed.Add(cos, cos, t)
		case 1:
			ed.Add(sin, sin, t)
		case 2:
			ed.Sub(cos, cos, t)
		case 3:
			ed.Sub(sin, sin, t)
		}
	}
	return sin, cos
}

// adjustedExponent returns the exponent of the leading digit of d.
func adjustedExponent(d *apd.Decimal) int64 {
	return int64(d.Exponent) + d.NumDigits() - 1
}

func isOdd(ctx *apd.Context, k *apd.Decimal) (bool, error) {
	rem := new(apd.Decimal)
	if _, err := ctx.Rem(rem, k, apd.New(2, 0)); err != nil {
		return false, errors.Wrap(err, "reduction parity")
	}
	return !rem.IsZero(), nil
}
