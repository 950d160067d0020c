// Package motion holds the animation timing tables for the page: springs,
// tweens, staggered groups and viewport reveals. Values are rendered into
// CSS custom properties and data attributes that the reveal script and
// stylesheet consume.
package motion

import (
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Ease names a CSS timing function.
type Ease string

const (
	EaseOut   Ease = "ease-out"
	EaseInOut Ease = "ease-in-out"
	Linear    Ease = "linear"
)

// Spring is a damped spring with unit mass.
type Spring struct {
	Stiffness float64
	Damping   float64
}

// DampingRatio returns zeta for the spring.
func (s Spring) DampingRatio() float64 {
	if s.Stiffness <= 0 {
		return 0
	}
	return s.Damping / (2 * math.Sqrt(s.Stiffness))
}

// Settle returns the time the spring needs to come within ~2% of rest,
// using the slowest decay rate of the system.
func (s Spring) Settle() time.Duration {
	if s.Stiffness <= 0 || s.Damping <= 0 {
		return 0
	}
	omega := math.Sqrt(s.Stiffness)
	zeta := s.DampingRatio()

	var rate float64
	if zeta < 1 {
		rate = zeta * omega
	} else {
		rate = omega * (zeta - math.Sqrt(zeta*zeta-1))
	}
	return time.Duration(4 / rate * float64(time.Second)).Round(time.Millisecond)
}

// Easing samples the spring's step response and returns it as a CSS
// linear() curve spanning Settle(). Underdamped springs overshoot.
func (s Spring) Easing() string {
	settle := s.Settle()
	if settle <= 0 {
		return string(Linear)
	}

	frames := int(math.Ceil(settle.Seconds() * easingFPS))
	sp := harmonica.NewSpring(harmonica.FPS(easingFPS), math.Sqrt(s.Stiffness), s.DampingRatio())

	pts := make([]string, 0, easingSamples+1)
	pts = append(pts, "0")
	var pos, vel float64
	frame := 0
	for i := 1; i < easingSamples; i++ {
		for target := int(math.Round(float64(i*frames) / easingSamples)); frame < target; frame++ {
			pos, vel = sp.Update(pos, vel, 1)
		}
		pts = append(pts, num(pos))
	}
	pts = append(pts, "1")
	return "linear(" + strings.Join(pts, ", ") + ")"
}

const (
	easingFPS     = 120
	easingSamples = 24
)

// Transition is either a tween (Duration + Ease) or a spring.
type Transition struct {
	Delay    time.Duration
	Duration time.Duration
	Ease     Ease
	Spring   *Spring
}

// Length is the effective run time, the spring's settle time when set.
func (t Transition) Length() time.Duration {
	if t.Spring != nil {
		return t.Spring.Settle()
	}
	return t.Duration
}

// TimingFunction returns the CSS timing function.
func (t Transition) TimingFunction() string {
	if t.Spring != nil {
		return t.Spring.Easing()
	}
	if t.Ease == "" {
		return string(EaseOut)
	}
	return string(t.Ease)
}

// After returns a copy of t delayed by d.
func (t Transition) After(d time.Duration) Transition {
	t.Delay += d
	return t
}

// Stagger spaces the children of a group.
type Stagger struct {
	DelayChildren time.Duration
	Step          time.Duration
}

// At returns the delay of child i.
func (s Stagger) At(i int) time.Duration {
	if i < 0 {
		i = 0
	}
	return s.DelayChildren + time.Duration(i)*s.Step
}

// Reveal describes an element that animates in when it enters the viewport.
type Reveal struct {
	Y      float64 // initial vertical offset in px
	X      float64 // initial horizontal offset in px
	Scale  float64 // initial scale, 0 means 1
	Once   bool
	Margin int // viewport root margin in px, negative shrinks the viewport
	Transition
}

// Delayed returns a copy of r with extra delay.
func (r Reveal) Delayed(d time.Duration) Reveal {
	r.Transition = r.Transition.After(d)
	return r
}

// Style renders the CSS custom properties for the reveal.
func (r Reveal) Style() string {
	scale := r.Scale
	if scale == 0 {
		scale = 1
	}
	return fmt.Sprintf("--reveal-x:%spx;--reveal-y:%spx;--reveal-scale:%s;--reveal-delay:%s;--reveal-duration:%s;--reveal-ease:%s",
		num(r.X), num(r.Y), num(scale), Seconds(r.Delay), Seconds(r.Length()), r.TimingFunction())
}

// Attrs renders the reveal as HTML attributes.
func (r Reveal) Attrs() template.HTMLAttr {
	var b strings.Builder
	b.WriteString(`data-reveal`)
	if r.Once {
		b.WriteString(` data-reveal-once`)
	}
	if r.Margin != 0 {
		fmt.Fprintf(&b, ` data-reveal-margin="%dpx"`, r.Margin)
	}
	fmt.Fprintf(&b, ` style="%s"`, r.Style())
	return template.HTMLAttr(b.String())
}

// Seconds formats d as a CSS time value, e.g. "0.35s".
func Seconds(d time.Duration) string {
	return num(d.Seconds()) + "s"
}

func num(f float64) string {
	return strconv.FormatFloat(math.Round(f*1000)/1000, 'f', -1, 64)
}
