package season_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/outfitter/internal/domain/season"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given season names", t, func() {
		Convey("Known names parse case-insensitively", func() {
			s, ok := season.Parse("WINTER")
			So(ok, ShouldBeTrue)
			So(s, ShouldEqual, season.Winter)

			s, ok = season.Parse(" autumn ")
			So(ok, ShouldBeTrue)
			So(s, ShouldEqual, season.Fall)
		})

		Convey("Unknown names and the current keyword do not parse", func() {
			_, ok := season.Parse("monsoon")
			So(ok, ShouldBeFalse)
			_, ok = season.Parse("current")
			So(ok, ShouldBeFalse)
			So(season.IsCurrent("Current"), ShouldBeTrue)
		})
	})
}

func TestForTemperature(t *testing.T) {
	Convey("Given temperature boundaries", t, func() {
		So(season.ForTemperature(39), ShouldResemble, []season.Season{season.Winter})
		So(season.ForTemperature(40), ShouldResemble, []season.Season{season.Fall, season.Spring})
		So(season.ForTemperature(59), ShouldResemble, []season.Season{season.Fall, season.Spring})
		So(season.ForTemperature(60), ShouldResemble, []season.Season{season.Summer})
		So(season.ForTemperature(-10), ShouldResemble, []season.Season{season.Winter})
	})
}

func TestMatches(t *testing.T) {
	Convey("Given item seasons", t, func() {
		Convey("A winter item matches at 39F but not at 60F", func() {
			item := []string{"Winter"}
			So(season.Matches(item, season.ForTemperature(39)...), ShouldBeTrue)
			So(season.Matches(item, season.ForTemperature(60)...), ShouldBeFalse)
		})

		Convey("An item without seasons never matches", func() {
			So(season.Matches(nil, season.Summer), ShouldBeFalse)
			So(season.Matches([]string{}, season.Spring, season.Fall), ShouldBeFalse)
		})

		Convey("Lowercase item seasons still match", func() {
			So(season.Matches([]string{"spring"}, season.Spring), ShouldBeTrue)
		})
	})
}

func TestCurrent(t *testing.T) {
	Convey("Given calendar dates", t, func() {
		date := func(m time.Month) time.Time { return time.Date(2026, m, 15, 12, 0, 0, 0, time.UTC) }

		Convey("The northern hemisphere uses meteorological seasons", func() {
			So(season.Current(date(time.January), season.Northern), ShouldEqual, season.Winter)
			So(season.Current(date(time.April), season.Northern), ShouldEqual, season.Spring)
			So(season.Current(date(time.July), season.Northern), ShouldEqual, season.Summer)
			So(season.Current(date(time.October), season.Northern), ShouldEqual, season.Fall)
			So(season.Current(date(time.December), season.Northern), ShouldEqual, season.Winter)
		})

		Convey("The southern hemisphere is flipped", func() {
			So(season.Current(date(time.January), season.Southern), ShouldEqual, season.Summer)
			So(season.Current(date(time.October), season.Southern), ShouldEqual, season.Spring)
		})
	})
}

func TestParseHemisphere(t *testing.T) {
	Convey("Given hemisphere names", t, func() {
		h, err := season.ParseHemisphere("Southern")
		So(err, ShouldBeNil)
		So(h, ShouldEqual, season.Southern)

		h, err = season.ParseHemisphere("")
		So(err, ShouldBeNil)
		So(h, ShouldEqual, season.Northern)

		_, err = season.ParseHemisphere("east")
		So(errors.Is(err, season.ErrInvalidHemisphere), ShouldBeTrue)
	})
}
