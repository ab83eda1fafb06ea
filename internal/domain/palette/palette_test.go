package palette_test

import (
	"testing"

	"github.com/okian/outfitter/internal/domain/palette"
	. "github.com/smartystreets/goconvey/convey"
)

func TestScore(t *testing.T) {
	Convey("Given color combinations", t, func() {
		Convey("Only neutrals are monochromatic", func() {
			So(palette.Score([]string{"Black", "White"}), ShouldEqual, palette.ScoreMonochromatic)
		})

		Convey("A single hue among neutrals is monochromatic", func() {
			So(palette.Score([]string{"White", "Blue", "White"}), ShouldEqual, palette.ScoreMonochromatic)
			So(palette.Score([]string{"navy", "Navy"}), ShouldEqual, palette.ScoreMonochromatic)
		})

		Convey("Red and Green are complementary and nothing better", func() {
			colors := []string{"Red", "Green"}
			So(palette.Score(colors), ShouldEqual, palette.ScoreComplementary)
			So(palette.IsMonochromatic(colors), ShouldBeFalse)
			So(palette.IsAnalogous(colors), ShouldBeFalse)
		})

		Convey("Red and Orange are analogous", func() {
			So(palette.Score([]string{"Red", "Orange"}), ShouldEqual, palette.ScoreAnalogous)
		})

		Convey("Red and Yellow score nothing", func() {
			So(palette.Score([]string{"Red", "Yellow"}), ShouldEqual, palette.ScoreNone)
		})

		Convey("The wheel wraps from Pink to Red", func() {
			So(palette.Score([]string{"Pink", "Red"}), ShouldEqual, palette.ScoreAnalogous)
		})

		Convey("Three hues are never mutually adjacent", func() {
			So(palette.IsAnalogous([]string{"Red", "Orange", "Yellow"}), ShouldBeFalse)
		})

		Convey("Any complementary pair counts among more colors", func() {
			So(palette.Score([]string{"Red", "Orange", "Green", "Black"}), ShouldEqual, palette.ScoreComplementary)
			So(palette.Score([]string{"pink", "GREEN"}), ShouldEqual, palette.ScoreComplementary)
		})

		Convey("Colors off the wheel fall through", func() {
			So(palette.Score([]string{"Beige", "Red"}), ShouldEqual, palette.ScoreMonochromatic)
			So(palette.Score([]string{"Brown", "Red"}), ShouldEqual, palette.ScoreNone)
		})

		Convey("Scoring is repeatable", func() {
			colors := []string{"Blue", "Orange", "White"}
			first := palette.Score(colors)
			for i := 0; i < 10; i++ {
				So(palette.Score(colors), ShouldEqual, first)
			}
		})
	})
}

func TestAdjacent(t *testing.T) {
	Convey("Given wheel positions", t, func() {
		So(palette.Adjacent("Green", "Blue"), ShouldBeTrue)
		So(palette.Adjacent("blue", "green"), ShouldBeTrue)
		So(palette.Adjacent("Green", "Purple"), ShouldBeFalse)
		So(palette.Adjacent("Green", "Teal"), ShouldBeFalse)
		So(palette.IsNeutral("gray"), ShouldBeTrue)
	})
}
