package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/outfitter/internal/domain/types"
)

const wardrobeJSON = `[
	{"id": 1, "name": "White Tee", "category": "Tops", "colors": ["White"], "seasons": ["Summer"], "occasions": ["Casual"]},
	{"id": 2, "name": "Red Tee", "category": "Tops", "colors": ["Red"], "seasons": ["Summer"], "occasions": ["Casual"]},
	{"id": 3, "name": "Green Shorts", "category": "Bottoms", "colors": ["Green"], "seasons": ["Summer"], "occasions": ["Casual"]},
	{"id": 4, "name": "Sandals", "category": "Shoes", "colors": ["Beige"], "seasons": ["Summer"], "occasions": ["Casual"]}
]`

const preferencesJSON = `{"occasion": "casual", "season": "summer", "style": "minimalist"}`

func run(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(dir, name, body string) string {
	path := filepath.Join(dir, name)
	So(os.WriteFile(path, []byte(body), 0o600), ShouldBeNil)
	return path
}

func TestSuggestCommand(t *testing.T) {
	Convey("Given wardrobe and preference files", t, func() {
		dir := t.TempDir()
		wardrobe := writeFile(dir, "wardrobe.json", wardrobeJSON)
		prefs := writeFile(dir, "prefs.json", preferencesJSON)

		Convey("When running suggest", func() {
			out, err := run("suggest", "--wardrobe", wardrobe, "--preferences", prefs, "--seed", "3")

			Convey("Then ranked suggestions are printed", func() {
				So(err, ShouldBeNil)
				var resp types.SuggestResponse
				So(json.Unmarshal([]byte(out), &resp), ShouldBeNil)
				So(resp.Suggestions, ShouldHaveLength, 2)
				So(resp.Suggestions[0].Score, ShouldEqual, 3)
				So(resp.Suggestions[0].Items[0].Name, ShouldEqual, "White Tee")
				So(resp.Suggestions[1].Score, ShouldEqual, 1)
			})
		})

		Convey("When a count and an output file are given", func() {
			target := filepath.Join(dir, "nested", "out.json")
			out, err := run("suggest", "-w", wardrobe, "-p", prefs, "-n", "1", "-o", target)

			Convey("Then the file holds one suggestion", func() {
				So(err, ShouldBeNil)
				So(out, ShouldBeEmpty)
				raw, readErr := os.ReadFile(target)
				So(readErr, ShouldBeNil)
				var resp types.SuggestResponse
				So(json.Unmarshal(raw, &resp), ShouldBeNil)
				So(resp.Suggestions, ShouldHaveLength, 1)
			})
		})

		Convey("When the same seed is used twice", func() {
			a, errA := run("suggest", "-w", wardrobe, "-p", prefs, "--seed", "9")
			b, errB := run("suggest", "-w", wardrobe, "-p", prefs, "--seed", "9")

			Convey("Then names and descriptions repeat", func() {
				So(errA, ShouldBeNil)
				So(errB, ShouldBeNil)
				var ra, rb types.SuggestResponse
				So(json.Unmarshal([]byte(a), &ra), ShouldBeNil)
				So(json.Unmarshal([]byte(b), &rb), ShouldBeNil)
				So(ra.Suggestions[0].Name, ShouldEqual, rb.Suggestions[0].Name)
				So(ra.Suggestions[0].Description, ShouldEqual, rb.Suggestions[0].Description)
			})
		})

		Convey("When an item lacks a category", func() {
			bad := writeFile(dir, "bad.json", `[{"id": 1, "name": "Mystery"}]`)
			_, err := run("suggest", "-w", bad, "-p", prefs)

			Convey("Then validation fails", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "invalid input")
			})
		})

		Convey("When the wardrobe file is missing", func() {
			_, err := run("suggest", "-w", filepath.Join(dir, "nope.json"), "-p", prefs)

			Convey("Then loading fails", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "failed to load wardrobe")
			})
		})

		Convey("When required flags are missing", func() {
			_, err := run("suggest", "-w", wardrobe)

			Convey("Then cobra rejects the call", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestSeasonCommand(t *testing.T) {
	Convey("Given the season command", t, func() {
		Convey("When resolving a July date", func() {
			north, errN := run("season", "--date", "2026-07-15")
			south, errS := run("season", "--date", "2026-07-15", "--hemisphere", "south")

			Convey("Then hemispheres disagree", func() {
				So(errN, ShouldBeNil)
				So(errS, ShouldBeNil)
				So(north, ShouldEqual, "summer\n")
				So(south, ShouldEqual, "winter\n")
			})
		})

		Convey("When the date is malformed", func() {
			_, err := run("season", "--date", "15/07/2026")

			Convey("Then it fails", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When the hemisphere is unknown", func() {
			_, err := run("season", "--hemisphere", "east")

			Convey("Then it fails", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestScoreCommand(t *testing.T) {
	Convey("Given the score command", t, func() {
		cases := []struct {
			colors string
			want   string
		}{
			{"White,Blue,Black", "3 monochromatic\n"},
			{"Red,Orange", "2 analogous\n"},
			{"Red,Green", "1 complementary\n"},
			{"Red,Blue", "0 none\n"},
		}
		for _, tc := range cases {
			Convey("When scoring "+tc.colors, func() {
				out, err := run("score", "--colors", tc.colors)

				Convey("Then the harmony is "+tc.want[2:len(tc.want)-1], func() {
					So(err, ShouldBeNil)
					So(out, ShouldEqual, tc.want)
				})
			})
		}

		Convey("When the log level is invalid", func() {
			_, err := run("score", "--colors", "Red", "--log-level", "loud")

			Convey("Then the command fails before running", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
