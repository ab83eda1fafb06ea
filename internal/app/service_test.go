package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	service "github.com/okian/outfitter/internal/app"
	"github.com/okian/outfitter/internal/domain/model"
	"github.com/okian/outfitter/internal/domain/season"
	"github.com/okian/outfitter/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func intPtr(n int) *int { return &n }
func seedPtr(n uint64) *uint64 { return &n }
func fixedClock(m time.Month) func() time.Time {
	return func() time.Time { return time.Date(2026, m, 10, 9, 0, 0, 0, time.UTC) }
}

func wardrobe() []model.ClothingItem {
	return []model.ClothingItem{
		{ID: 1, Name: "Tee", Category: model.CategoryTops, Colors: []string{"White"}, Seasons: []string{"Summer"}, Occasions: []string{"Casual"}},
		{ID: 2, Name: "Polo", Category: model.CategoryTops, Colors: []string{"Blue"}, Seasons: []string{"Summer"}, Occasions: []string{"Casual"}},
		{ID: 3, Name: "Shorts", Category: model.CategoryBottoms, Colors: []string{"Orange"}, Seasons: []string{"Summer"}, Occasions: []string{"Casual"}},
		{ID: 4, Name: "Sandals", Category: model.CategoryShoes, Colors: []string{"White"}, Seasons: []string{"Summer"}, Occasions: []string{"Casual"}},
		{ID: 5, Name: "Sweater", Category: model.CategoryTops, Colors: []string{"Gray"}, Seasons: []string{"Winter"}, Occasions: []string{"Casual"}},
		{ID: 6, Name: "Cords", Category: model.CategoryBottoms, Colors: []string{"Beige"}, Seasons: []string{"Winter"}, Occasions: []string{"Casual"}},
		{ID: 7, Name: "Boots", Category: model.CategoryShoes, Colors: []string{"Black"}, Seasons: []string{"Winter"}, Occasions: []string{"Casual"}},
		{ID: 8, Name: "Cap", Category: model.CategoryAccessories, Colors: []string{"Red"}, Seasons: []string{"Summer"}, Occasions: []string{"Casual"}},
		{ID: 9, Name: "Scarf", Category: model.CategoryAccessories, Colors: []string{"Red"}, Seasons: []string{"Summer"}, Occasions: []string{"Casual"}},
	}
}

func request(seasonName string) types.SuggestRequest {
	return types.SuggestRequest{
		Wardrobe: wardrobe(),
		Preferences: model.OutfitPreference{
			Occasion: "casual", Season: seasonName, Style: "balanced", IncludeAccessories: true,
		},
	}
}

func TestService_Suggest(t *testing.T) {
	Convey("Given a service pinned to July in the north", t, func() {
		svc := service.New(service.WithClock(fixedClock(time.July)), service.WithSeed(11))
		ctx := context.Background()

		Convey("When asking for the current season", func() {
			resp, err := svc.Suggest(ctx, request("current"))

			Convey("Then summer items are used", func() {
				So(err, ShouldBeNil)
				So(resp.CurrentSeason, ShouldEqual, "summer")
				So(resp.Suggestions, ShouldHaveLength, 2)
				for _, s := range resp.Suggestions {
					So(s.Season, ShouldEqual, "summer")
					So(s.Items[2].ID, ShouldEqual, 4)
				}
			})
		})

		Convey("When the same request is repeated", func() {
			a, errA := svc.Suggest(ctx, request("summer"))
			b, errB := svc.Suggest(ctx, request("summer"))

			Convey("Then the service seed makes picks repeatable", func() {
				So(errA, ShouldBeNil)
				So(errB, ShouldBeNil)
				for i := range a.Suggestions {
					So(a.Suggestions[i].Items, ShouldResemble, b.Suggestions[i].Items)
					So(a.Suggestions[i].Name, ShouldEqual, b.Suggestions[i].Name)
				}
			})
		})

		Convey("When a count is given", func() {
			req := request("summer")
			req.Count = intPtr(1)
			resp, err := svc.Suggest(ctx, req)

			Convey("Then it bounds the output", func() {
				So(err, ShouldBeNil)
				So(resp.Suggestions, ShouldHaveLength, 1)
				So(resp.Suggestions[0].Score, ShouldEqual, 3)
			})
		})

		Convey("When the count exceeds the maximum", func() {
			req := request("summer")
			req.Count = intPtr(1000)
			_, err := svc.Suggest(ctx, req)

			Convey("Then the request is rejected", func() {
				So(errors.Is(err, service.ErrInvalidRequest), ShouldBeTrue)
			})
		})

		Convey("When the wardrobe is empty", func() {
			req := request("summer")
			req.Wardrobe = nil
			resp, err := svc.Suggest(ctx, req)

			Convey("Then an empty list comes back and is counted", func() {
				So(err, ShouldBeNil)
				So(resp.Suggestions, ShouldBeEmpty)
				So(svc.GetStats()["emptyResults"], ShouldEqual, int64(1))
			})
		})

		Convey("When the context is already cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := svc.Suggest(cctx, request("summer"))

			Convey("Then the cancellation is returned", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})
	})

	Convey("Given a service in the southern hemisphere in July", t, func() {
		svc := service.New(
			service.WithClock(fixedClock(time.July)),
			service.WithHemisphere(season.Southern),
		)

		Convey("When asking for the current season", func() {
			resp, err := svc.Suggest(context.Background(), request("current"))

			Convey("Then winter items are used", func() {
				So(err, ShouldBeNil)
				So(resp.CurrentSeason, ShouldEqual, "winter")
				So(resp.Suggestions, ShouldHaveLength, 1)
				So(resp.Suggestions[0].Items[0].ID, ShouldEqual, 5)
			})
		})
	})

	Convey("Given requests with their own seeds", t, func() {
		svc := service.New()
		ctx := context.Background()
		req := request("summer")
		req.Seed = seedPtr(5)

		a, _ := svc.Suggest(ctx, req)
		b, _ := svc.Suggest(ctx, req)

		Convey("Then the request seed wins", func() {
			for i := range a.Suggestions {
				So(a.Suggestions[i].Items, ShouldResemble, b.Suggestions[i].Items)
				So(a.Suggestions[i].Description, ShouldEqual, b.Suggestions[i].Description)
			}
		})
	})
}

func TestService_SuggestBatch(t *testing.T) {
	Convey("Given a batch-capable service", t, func() {
		svc := service.New(
			service.WithClock(fixedClock(time.January)),
			service.WithBatchConcurrency(2),
			service.WithMaxBatchSize(4),
		)
		ctx := context.Background()

		Convey("When running several requests", func() {
			reqs := []types.SuggestRequest{request("summer"), request("winter"), request("current")}
			results, err := svc.SuggestBatch(ctx, reqs)

			Convey("Then results keep request order", func() {
				So(err, ShouldBeNil)
				So(results, ShouldHaveLength, 3)
				So(results[0].Suggestions[0].Season, ShouldEqual, "summer")
				So(results[1].Suggestions[0].Season, ShouldEqual, "winter")
				So(results[2].CurrentSeason, ShouldEqual, "winter")
				So(svc.GetStats()["batches"], ShouldEqual, int64(1))
				So(svc.GetStats()["requests"], ShouldEqual, int64(3))
			})
		})

		Convey("When one request is invalid", func() {
			bad := request("summer")
			bad.Count = intPtr(-1)
			_, err := svc.SuggestBatch(ctx, []types.SuggestRequest{request("summer"), bad})

			Convey("Then the batch fails with the request index", func() {
				So(errors.Is(err, service.ErrInvalidRequest), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "request 1")
			})
		})

		Convey("When the batch is empty or too large", func() {
			_, errEmpty := svc.SuggestBatch(ctx, nil)
			var many []types.SuggestRequest
			for i := 0; i < 5; i++ {
				many = append(many, request("summer"))
			}
			_, errMany := svc.SuggestBatch(ctx, many)

			Convey("Then it is rejected", func() {
				So(errors.Is(errEmpty, service.ErrInvalidRequest), ShouldBeTrue)
				So(errors.Is(errMany, service.ErrInvalidRequest), ShouldBeTrue)
			})
		})
	})
}

func TestService_Stats(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New(service.WithCombinationBudget(50), service.WithMaxCount(10), service.WithDefaultCount(3))
		stats := svc.GetStats()

		Convey("Then configuration is reported", func() {
			So(stats["combinationBudget"], ShouldEqual, 50)
			So(stats["maxCount"], ShouldEqual, 10)
			So(stats["defaultCount"], ShouldEqual, 3)
			So(stats["hemisphere"], ShouldEqual, "north")
			So(stats["requests"], ShouldEqual, int64(0))
		})

		Convey("Then the season helpers use the clock", func() {
			pinned := service.New(service.WithClock(fixedClock(time.April)))
			So(pinned.CurrentSeason(context.Background()), ShouldEqual, season.Spring)
			So(pinned.CurrentSeasonIn(context.Background(), season.Southern), ShouldEqual, season.Fall)
		})
	})
}
