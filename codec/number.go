package codec

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"
)

func intNumber(i int) json.Number {
	return json.Number(strconv.Itoa(i))
}

// floatNumber formats f as a JSON number literal. Non-finite values have
// no JSON form and become 0.
func floatNumber(f float64) json.Number {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "0"
	}
	return json.Number(strconv.FormatFloat(f, 'g', -1, 64))
}

// isJSONNumber reports whether s is a valid JSON number literal.
func isJSONNumber(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
	}
	if s == "" || s[0] < '0' || s[0] > '9' {
		return false
	}
	if s[0] == '0' && len(s) > 1 && s[1] >= '0' && s[1] <= '9' {
		return false
	}
	return json.Valid([]byte(s))
}

// yamlNumber normalizes a YAML int or float literal (hex, octal, binary,
// underscores, a leading '+', ".5") to a JSON number literal. ok is false
// for .inf and .nan, which have no JSON form.
func yamlNumber(lit string) (json.Number, bool) {
	if isJSONNumber(lit) {
		return json.Number(lit), true
	}
	s := strings.ReplaceAll(lit, "_", "")
	s = strings.TrimPrefix(s, "+")
	if i, ok := new(big.Int).SetString(s, 0); ok {
		return json.Number(i.String()), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return "", false
	}
	return floatNumber(f), true
}

// numberInt converts a number literal to an int when it is integral.
func numberInt(n json.Number) (int, bool) {
	if i, err := strconv.Atoi(n.String()); err == nil {
		return i, true
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// compareNumbers compares two number literals numerically.
func compareNumbers(a, b json.Number) int {
	x, okA := new(big.Float).SetString(a.String())
	y, okB := new(big.Float).SetString(b.String())
	if !okA || !okB {
		return strings.Compare(a.String(), b.String())
	}
	return x.Cmp(y)
}
