package motion

import (
	"fmt"
	"html/template"
	"math"
	"strings"
	"time"
)

func secs(f float64) time.Duration {
	return time.Duration(math.Round(f * float64(time.Second)))
}

var (
	// Word-by-word headline reveal.
	WordSpring  = Spring{Stiffness: 100, Damping: 12}
	WordStagger = Stagger{Step: secs(0.12)}

	// Springs and group staggers.
	FieldSpring   = Spring{Stiffness: 100, Damping: 10}
	FocusSpring   = Spring{Stiffness: 500, Damping: 30}
	FormStagger   = Stagger{DelayChildren: secs(0.2), Step: secs(0.1)}
	ConfirmPop    = Spring{Stiffness: 200, Damping: 20}
	FooterStagger = Stagger{DelayChildren: secs(0.3), Step: secs(0.1)}
	NavStagger    = Stagger{Step: secs(0.1)}

	HeroTitle   = Reveal{Y: 20, Transition: Transition{Delay: secs(0.2), Duration: secs(0.8)}}
	HeroButtons = Reveal{Y: 20, Transition: Transition{Delay: secs(1.5), Duration: secs(0.5)}}
	NavBar      = Reveal{Y: -100, Transition: Transition{Duration: secs(0.5), Ease: EaseOut}}
	NavItem     = Reveal{Y: -10, Transition: Transition{Duration: secs(0.3), Ease: EaseOut}}

	Paragraph   = Reveal{Y: 20, Once: true, Transition: Transition{Duration: secs(0.5)}}
	ProjectCard = Reveal{Y: 50, Once: true, Margin: -50, Transition: Transition{Duration: secs(0.5), Ease: EaseOut}}
	SkillCard   = Reveal{Y: 30, Once: true, Margin: -50, Transition: Transition{Duration: secs(0.5)}}
	SkillChip   = Reveal{Scale: 0.8, Once: true, Transition: Transition{Duration: secs(0.3)}}
	EntryCard   = Reveal{Y: 20, Once: true, Transition: Transition{Duration: secs(0.5)}}
	FormBlock   = Reveal{Y: 30, Once: true, Margin: -50, Transition: Transition{Duration: secs(0.5), Ease: EaseOut}}
	FormField   = Reveal{Y: 20, Once: true, Transition: Transition{Spring: &FieldSpring}}
	FooterItem  = Reveal{Y: 20, Once: true, Transition: Transition{Duration: secs(0.4)}}
	FooterBase  = Reveal{Y: 10, Once: true, Transition: Transition{Delay: secs(0.5), Duration: secs(0.5)}}
)

// ProjectAt staggers project cards by 0.1s.
func ProjectAt(i int) Reveal {
	return ProjectCard.Delayed(time.Duration(i) * secs(0.1))
}

// SkillCardAt staggers skill categories by 0.1s.
func SkillCardAt(i int) Reveal {
	return SkillCard.Delayed(time.Duration(i) * secs(0.1))
}

// SkillChipAt delays chip j of category i by 0.05j + 0.1i seconds.
func SkillChipAt(category, chip int) Reveal {
	return SkillChip.Delayed(time.Duration(chip)*secs(0.05) + time.Duration(category)*secs(0.1))
}

// ExperienceAt staggers experience entries by 0.2s.
func ExperienceAt(i int) Reveal {
	return EntryCard.Delayed(time.Duration(i) * secs(0.2))
}

// ParagraphAt returns the about-section paragraph reveal, 0.3s + 0.1s per paragraph.
func ParagraphAt(i int) Reveal {
	return Paragraph.Delayed(secs(0.3) + time.Duration(i)*secs(0.1))
}

// FormFieldAt staggers the contact form fields.
func FormFieldAt(i int) Reveal {
	return FormField.Delayed(FormStagger.At(i))
}

// FooterItemAt staggers footer list items.
func FooterItemAt(i int) Reveal {
	return FooterItem.Delayed(FooterStagger.At(i))
}

// NavItemAt staggers navigation links after the bar slides in.
func NavItemAt(i int) Reveal {
	return NavItem.Delayed(NavStagger.At(i))
}

// Word is one word of a headline with its reveal timing.
type Word struct {
	Text   string
	Reveal Reveal
}

// Words splits text on spaces and staggers each word. The group delay is
// scaled by 0.1, so a delay of 1 starts the first word at 0.1s.
func Words(text string, delay float64, once bool) []Word {
	parts := strings.Fields(text)
	stagger := WordStagger
	stagger.DelayChildren = secs(delay * 0.1)

	words := make([]Word, 0, len(parts))
	for i, p := range parts {
		words = append(words, Word{
			Text: p,
			Reveal: Reveal{
				Y:          20,
				Once:       once,
				Transition: Transition{Delay: stagger.At(i), Spring: &WordSpring},
			},
		})
	}
	return words
}

// Shape is a decorative hero blob looping on a fixed timer.
type Shape struct {
	Size     int // px
	Left     int // percent
	Top      int // percent
	Duration time.Duration
	Delay    time.Duration
}

// Style renders the inline CSS for the shape.
func (s Shape) Style() template.CSS {
	return template.CSS(fmt.Sprintf("width:%dpx;height:%dpx;left:%d%%;top:%d%%;animation-duration:%s;animation-delay:%s",
		s.Size, s.Size, s.Left, s.Top, Seconds(s.Duration), Seconds(s.Delay)))
}

// Shapes returns the n floating hero shapes. Shape i is 100+50i px wide,
// sits at 10+15i% / 20+10i%, loops every 10-i seconds and starts 0.2i
// seconds late.
func Shapes(n int) []Shape {
	shapes := make([]Shape, 0, n)
	for i := 0; i < n; i++ {
		d := 10 - i
		if d < 1 {
			d = 1
		}
		shapes = append(shapes, Shape{
			Size:     100 + i*50,
			Left:     10 + i*15,
			Top:      20 + i*10,
			Duration: time.Duration(d) * time.Second,
			Delay:    time.Duration(i) * secs(0.2),
		})
	}
	return shapes
}

// ScrollIndicator loops every 2s after an initial 2s delay.
var ScrollIndicator = Shape{Duration: 2 * time.Second, Delay: 2 * time.Second}
