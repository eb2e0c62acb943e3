// parse.go implements the text to Duration direction.
//
// The parser is a hand-written scanner rather than a regexp: it accumulates
// the magnitude in a uint64 so that exactly 2^63 can be held until the sign
// is applied, which is the only way "-9223372036854775808ns" can produce Min.

package duration

// Unit is one entry of the unit table.
type Unit struct {
	Name  string   // suffix as written, e.g. "ms"
	Value Duration // nanoseconds per unit
}

// unitTable lists accepted suffixes in display order.
var unitTable = []Unit{
	{"ns", Nanosecond},
	{"us", Microsecond},
	{"µs", Microsecond}, // U+00B5 micro sign
	{"μs", Microsecond}, // U+03BC Greek small letter mu
	{"ms", Millisecond},
	{"s", Second},
	{"m", Minute},
	{"h", Hour},
}

var unitMap = func() map[string]uint64 {
	m := make(map[string]uint64, len(unitTable))
	for _, u := range unitTable {
		m[u.Name] = uint64(u.Value)
	}
	return m
}()

// Units returns the accepted unit suffixes in display order.
func Units() []Unit {
	out := make([]Unit, len(unitTable))
	copy(out, unitTable)
	return out
}

// Parse parses a duration string.
//
// A duration string is a possibly signed sequence of decimal numbers, each
// with optional fraction and a unit suffix, such as "300ms", "-1.5h" or
// "2h45m". Valid units are "ns", "us" (or "µs" / "μs"), "ms", "s", "m", "h".
// The bare string "0", optionally signed, needs no unit.
//
// Errors match ErrInvalid, ErrMissingUnit or ErrUnknownUnit under errors.Is.
func Parse(s string) (Duration, error) {
	// [-+]?([0-9]*(\.[0-9]*)?[a-z]+)+
	var d uint64
	neg := false

	if s != "" {
		c := s[0]
		if c == '-' || c == '+' {
			neg = c == '-'
			s = s[1:]
		}
	}
	if s == "0" {
		return 0, nil
	}
	if s == "" {
		return 0, ErrInvalid
	}

	for s != "" {
		var (
			v, f  uint64      // integers before, after decimal point
			scale float64 = 1 // value = v + f/scale
		)

		// The next character must be [0-9.]
		if !(s[0] == '.' || '0' <= s[0] && s[0] <= '9') {
			return 0, ErrInvalid
		}

		// Consume [0-9]*
		pl := len(s)
		var ok bool
		v, s, ok = leadingInt(s)
		if !ok {
			return 0, ErrInvalid
		}
		pre := pl != len(s) // whether we consumed anything before a period

		// Consume (\.[0-9]*)?
		post := false
		if s != "" && s[0] == '.' {
			s = s[1:]
			pl := len(s)
			f, scale, s = leadingFraction(s)
			post = pl != len(s)
		}
		if !pre && !post {
			// no digits (e.g. ".s" or "-.s")
			return 0, ErrInvalid
		}

		// Consume unit.
		i := 0
		for ; i < len(s); i++ {
			c := s[i]
			if c == '.' || '0' <= c && c <= '9' {
				break
			}
		}
		if i == 0 {
			return 0, ErrMissingUnit
		}
		u := s[:i]
		s = s[i:]
		unit, found := unitMap[u]
		if !found {
			return 0, &UnknownUnitError{Unit: u}
		}

		if v > 1<<63/unit {
			return 0, ErrInvalid
		}
		v *= unit
		if f > 0 {
			// float64 is needed to be nanosecond accurate for fractions of hours.
			// v >= 0 && (f*unit/scale) <= 3.6e+12 (ns/h, h is the largest unit)
			v += uint64(float64(f) * (float64(unit) / scale))
			if v > 1<<63 {
				return 0, ErrInvalid
			}
		}
		if v > 1<<63-d {
			return 0, ErrInvalid
		}
		d += v
	}

	if neg {
		// d == 1<<63 converts to Min, and negating Min leaves it unchanged.
		return -Duration(d), nil
	}
	if d > 1<<63-1 {
		return 0, ErrInvalid
	}
	return Duration(d), nil
}

// MustParse is like Parse but panics if s cannot be parsed. It simplifies
// initialisation of variables and test tables from literals.
func MustParse(s string) Duration {
	d, err := Parse(s)
	if err != nil {
		panic("duration: MustParse(" + Quote(s) + "): " + err.Error())
	}
	return d
}

// leadingInt consumes the leading [0-9]* from s. It reports false if the
// value exceeds 2^63.
func leadingInt(s string) (x uint64, rem string, ok bool) {
	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		if x > 1<<63/10 {
			return 0, rem, false
		}
		x = x*10 + uint64(c) - '0'
		if x > 1<<63 {
			return 0, rem, false
		}
	}
	return x, s[i:], true
}

// leadingFraction consumes the leading [0-9]* from s.
// It is used only for fractions, so does not return an error on overflow,
// it just stops accumulating precision.
func leadingFraction(s string) (x uint64, scale float64, rem string) {
	i := 0
	scale = 1
	overflow := false
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		if overflow {
			continue
		}
		if x > (1<<63-1)/10 {
			// It's possible for overflow to give a positive number, so take care.
			overflow = true
			continue
		}
		y := x*10 + uint64(c) - '0'
		if y > 1<<63 {
			overflow = true
			continue
		}
		x = y
		scale *= 10
	}
	return x, scale, s[i:]
}
