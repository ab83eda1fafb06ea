package occasion_test

import (
	"testing"

	"github.com/okian/outfitter/internal/domain/occasion"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRelevant(t *testing.T) {
	Convey("Given the occasion table", t, func() {
		So(occasion.Relevant("casual"), ShouldResemble, []string{"Casual", "Sport"})
		So(occasion.Relevant("Work"), ShouldResemble, []string{"Work", "Formal"})
		So(occasion.Relevant("date"), ShouldResemble, []string{"Party", "Casual", "Formal"})
		So(occasion.Relevant("lounge"), ShouldResemble, []string{"Casual"})

		Convey("Unmapped occasions are echoed literally", func() {
			So(occasion.Relevant("Wedding"), ShouldResemble, []string{"Wedding"})
		})

		Convey("The returned slice is a copy", func() {
			tags := occasion.Relevant("formal")
			tags[0] = "Changed"
			So(occasion.Relevant("formal"), ShouldResemble, []string{"Formal"})
		})
	})
}

func TestMatches(t *testing.T) {
	Convey("Given item occasions", t, func() {
		Convey("Mapped occasions accept any relevant tag", func() {
			So(occasion.Matches([]string{"Sport"}, "casual"), ShouldBeTrue)
			So(occasion.Matches([]string{"Formal"}, "work"), ShouldBeTrue)
			So(occasion.Matches([]string{"Casual"}, "formal"), ShouldBeFalse)
		})

		Convey("Unmapped occasions require an exact tag", func() {
			So(occasion.Matches([]string{"Wedding"}, "Wedding"), ShouldBeTrue)
			So(occasion.Matches([]string{"wedding"}, "Wedding"), ShouldBeFalse)
		})

		Convey("Items without occasions never match", func() {
			So(occasion.Matches(nil, "casual"), ShouldBeFalse)
			So(occasion.Matches([]string{}, ""), ShouldBeFalse)
		})
	})
}
