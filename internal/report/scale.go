package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Category10 is the categorical palette used for per-solver colours.
var Category10 = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// ylOrRd is the nine-class yellow-orange-red ramp behind the heatmap scale.
var ylOrRd = []string{
	"#ffffcc", "#ffeda0", "#fed976", "#feb24c", "#fd8d3c",
	"#fc4e2a", "#e31a1c", "#bd0026", "#800026",
}

// MissingCellColor fills heatmap cells without a qualifying run.
const MissingCellColor = "#eee"

// logScale maps a positive domain onto a pixel range logarithmically.
type logScale struct {
	d0, d1 float64
	r0, r1 float64
}

func newLogScale(d0, d1, r0, r1 float64) logScale {
	if d0 <= 0 {
		d0 = 1
	}
	if d1 <= d0 {
		d1 = d0 * 10
	}
	return logScale{d0: d0, d1: d1, r0: r0, r1: r1}
}

func (s logScale) scale(v float64) float64 {
	if v <= 0 {
		v = s.d0
	}
	t := (math.Log10(v) - math.Log10(s.d0)) / (math.Log10(s.d1) - math.Log10(s.d0))
	return s.r0 + t*(s.r1-s.r0)
}

// ticks returns the powers of ten inside the domain. Domains spanning
// less than two decades also get the 2x and 5x multiples.
func (s logScale) ticks() []float64 {
	lo := int(math.Floor(math.Log10(s.d0)))
	hi := int(math.Ceil(math.Log10(s.d1)))
	mults := []float64{1}
	if hi-lo < 2 {
		mults = []float64{1, 2, 5}
	}
	var out []float64
	for e := lo; e <= hi; e++ {
		base := math.Pow(10, float64(e))
		for _, m := range mults {
			v := m * base
			if v >= s.d0*(1-1e-9) && v <= s.d1*(1+1e-9) {
				out = append(out, v)
			}
		}
	}
	return out
}

// bandScale places n equal bands across a pixel range with the given
// padding, centred in the range.
type bandScale struct {
	start, step, bandwidth float64
}

func newBandScale(domain []string, r0, r1, padding float64) bandScale {
	n := float64(len(domain))
	step := (r1 - r0) / math.Max(1, n-padding+padding*2)
	start := r0 + (r1-r0-step*(n-padding))*0.5
	return bandScale{start: start, step: step, bandwidth: step * (1 - padding)}
}

func (b bandScale) at(i int) float64 {
	return b.start + b.step*float64(i)
}

// sequentialColor maps v in [lo, hi] onto the YlOrRd ramp, clamping values
// outside the domain to its ends. Channels follow a uniform cubic B-spline
// through the nine stops, so the ends hit the first and last stop exactly
// while the interior is smoothed.
func sequentialColor(v, lo, hi float64) string {
	t := 0.0
	if hi > lo {
		t = (v - lo) / (hi - lo)
	}
	t = math.Max(0, math.Min(1, t))

	n := len(ylOrRd) - 1
	i := n - 1
	if t < 1 {
		i = int(math.Floor(t * float64(n)))
	}
	local := (t - float64(i)/float64(n)) * float64(n)

	v1, v2 := parseHex(ylOrRd[i]), parseHex(ylOrRd[i+1])
	var rgb [3]uint8
	for c := range rgb {
		p1, p2 := float64(v1[c]), float64(v2[c])
		p0 := 2*p1 - p2
		if i > 0 {
			p0 = float64(parseHex(ylOrRd[i-1])[c])
		}
		p3 := 2*p2 - p1
		if i < n-1 {
			p3 = float64(parseHex(ylOrRd[i+2])[c])
		}
		rgb[c] = clampChannel(basis(local, p0, p1, p2, p3))
	}
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

// basis evaluates the uniform cubic B-spline segment between p1 and p2.
func basis(t, p0, p1, p2, p3 float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return ((1-3*t+3*t2-t3)*p0 +
		(4-6*t2+3*t3)*p1 +
		(1+3*t+3*t2-3*t3)*p2 +
		t3*p3) / 6
}

func clampChannel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

func parseHex(hex string) [3]uint8 {
	hex = strings.TrimPrefix(hex, "#")
	var out [3]uint8
	for i := 0; i < 3 && len(hex) >= (i+1)*2; i++ {
		v, _ := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		out[i] = uint8(v)
	}
	return out
}

var siPrefixes = []struct {
	exp    int
	symbol string
}{
	{-9, "n"}, {-6, "µ"}, {-3, "m"}, {0, ""}, {3, "k"}, {6, "M"}, {9, "G"},
}

// formatSI renders v with an SI prefix and trailing zeros trimmed
// (0.1 -> "100m", 2000 -> "2k").
func formatSI(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	exp := int(math.Floor(math.Log10(math.Abs(v))/3)) * 3
	if exp < siPrefixes[0].exp {
		exp = siPrefixes[0].exp
	}
	if last := siPrefixes[len(siPrefixes)-1].exp; exp > last {
		exp = last
	}
	symbol := ""
	for _, p := range siPrefixes {
		if p.exp == exp {
			symbol = p.symbol
		}
	}
	scaled := v / math.Pow(10, float64(exp))
	return strconv.FormatFloat(roundSignificant(scaled, 6), 'f', -1, 64) + symbol
}

func roundSignificant(v float64, digits int) float64 {
	if v == 0 {
		return 0
	}
	mag := math.Pow(10, float64(digits)-math.Ceil(math.Log10(math.Abs(v))))
	return math.Round(v*mag) / mag
}
