package places

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/RayDR/YelpOut/app/api/planner/internal/conversation"
	"github.com/RayDR/YelpOut/app/api/planner/internal/itinerary"
)

type timeOfDay string

const (
	morning   timeOfDay = "morning"
	midday    timeOfDay = "midday"
	afternoon timeOfDay = "afternoon"
	evening   timeOfDay = "evening"
	night     timeOfDay = "night"
)

func timeOfDayFor(ctx *conversation.PlanContext) timeOfDay {
	if !ctx.StartTimeResolved() {
		return midday
	}
	hour, err := strconv.Atoi(strings.SplitN(ctx.Event.StartTime, ":", 2)[0])
	if err != nil {
		return midday
	}
	switch {
	case hour >= 6 && hour < 11:
		return morning
	case hour >= 11 && hour < 15:
		return midday
	case hour >= 15 && hour < 18:
		return afternoon
	case hour >= 18 && hour < 22:
		return evening
	default:
		return night
	}
}

// BuildSearchParams maps the plan context and block type onto Yelp search
// filters. Category and term choices follow the clock: the same restaurant
// block means breakfast at 9am and fine dining at 8pm.
func BuildSearchParams(ctx *conversation.PlanContext, blockType itinerary.BlockType, limit int) SearchParams {
	params := SearchParams{Limit: limit}

	tod := timeOfDayFor(ctx)
	hasKids := ctx.Participants != nil && ctx.Participants.Kids > 0
	isFamily := ctx.EventType() == conversation.EventFamily || hasKids
	hasPets := ctx.Participants != nil && ctx.Participants.Pets

	if ctx.Location != nil {
		if ctx.Location.Lat != 0 && ctx.Location.Lng != 0 {
			params.Latitude = ctx.Location.Lat
			params.Longitude = ctx.Location.Lng
		} else {
			params.Location = ctx.Location.Text
		}
		if ctx.Location.RadiusKm > 0 {
			params.Radius = int(ctx.Location.RadiusKm * 1000)
		}
	}

	if ctx.Budget != nil && ctx.Budget.Tier != "" && ctx.Budget.Tier != conversation.BudgetNone {
		level := strings.Count(string(ctx.Budget.Tier), "$")
		if level >= 1 && level <= 4 {
			params.Price = strconv.Itoa(level)
		}
	}

	params.Attributes = strings.Join(buildAttributes(ctx), ",")

	switch blockType {
	case itinerary.BlockActivity:
		fillActivity(&params, ctx, tod, isFamily, hasPets)
	case itinerary.BlockRestaurant:
		fillRestaurant(&params, ctx, tod, isFamily, hasPets)
	case itinerary.BlockDessert:
		fillDessert(&params, tod, isFamily)
	}

	return params
}

// buildAttributes maps group and mood traits onto Yelp's attribute filters.
func buildAttributes(ctx *conversation.PlanContext) []string {
	var attributes []string

	if ctx.Participants != nil {
		if ctx.Participants.Kids > 0 {
			attributes = append(attributes, "wheelchair_accessible")
		}
		if ctx.Participants.Pets {
			attributes = append(attributes, "dogs_allowed")
		}
		if ctx.Participants.Size > 4 {
			attributes = append(attributes, "reservation")
		}
	}

	if ctx.Preferences != nil {
		for _, mood := range ctx.Preferences.Mood {
			switch mood {
			case "romantic", "upscale":
				attributes = append(attributes, "reservation")
			case "lively":
				attributes = append(attributes, "hot_and_new")
			}
		}
	}

	return lo.Uniq(attributes)
}

func fillActivity(params *SearchParams, ctx *conversation.PlanContext, tod timeOfDay, isFamily, hasPets bool) {
	switch tod {
	case morning:
		params.Categories = "parks,museums,galleries,aquariums,farms"
		params.Term = "morning activities"
		if isFamily {
			params.Term = "morning family activities"
		}
	case midday, afternoon:
		if isFamily {
			params.Categories = "playgrounds,arcades,museums,aquariums,zoos,parks"
			params.Term = "family entertainment"
		} else {
			params.Categories = "museums,galleries,tours,activities"
			params.Term = "entertainment activities"
		}
	default:
		if isFamily {
			params.Categories = "arcades,bowling,mini_golf"
			params.Term = "family evening activities"
		} else {
			params.Categories = "bars,lounges,theaters,comedy_clubs,nightlife"
			params.Term = "evening entertainment nightlife"
		}
	}

	if hasPets {
		params.Term += " dog-friendly"
	}
}

func fillRestaurant(params *SearchParams, ctx *conversation.PlanContext, tod timeOfDay, isFamily, hasPets bool) {
	var cuisines, moods []string
	if ctx.Preferences != nil {
		cuisines = lo.Without(ctx.Preferences.Cuisine, conversation.AnyPreference)
		moods = ctx.Preferences.Mood
	}

	switch tod {
	case morning:
		params.Categories = "breakfast_brunch,cafes,bagels,donuts,coffee"
		terms := []string{"breakfast", "brunch"}
		if isFamily {
			terms = append(terms, "family-friendly")
		}
		params.Term = strings.Join(terms, " ")
	case midday:
		params.Categories = "restaurants,sandwiches,delis,cafes,lunch"
		terms := []string{"lunch"}
		if isFamily {
			terms = append(terms, "family-friendly casual")
		}
		terms = append(terms, cuisines...)
		params.Term = strings.Join(terms, " ")
	case afternoon:
		params.Categories = "cafes,sandwiches,snacks,bakeries"
		params.Term = "light meal cafe"
		if isFamily {
			params.Term = "family-friendly cafe snacks"
		}
	case evening:
		switch {
		case isFamily:
			params.Categories = "restaurants,pizza,italian,mexican,burgers"
			params.Term = "family-friendly dinner casual dining"
		case lo.Contains(moods, "romantic"):
			params.Categories = "restaurants,finedining,italian,french,steakhouses"
			params.Term = "romantic dinner fine dining"
		default:
			params.Categories = "restaurants,dinner"
			terms := []string{"dinner"}
			for _, mood := range moods {
				switch mood {
				case "upscale", "casual", "lively":
					terms = append(terms, mood)
				}
			}
			terms = append(terms, cuisines...)
			params.Term = strings.Join(terms, " ")
		}
	default:
		if isFamily {
			params.Categories = "diners,pizza,burgers"
			params.Term = "family dining"
		} else {
			params.Categories = "diners,bars,pubs,latenight"
			params.Term = "late night food"
		}
	}

	if hasPets {
		params.Term += " dog-friendly patio"
	}
}

func fillDessert(params *SearchParams, tod timeOfDay, isFamily bool) {
	switch tod {
	case morning:
		params.Categories = "coffee,coffeeshops,bakeries,bagels,donuts"
		params.Term = "coffee bakery breakfast pastries"
	case midday, afternoon:
		params.Categories = "icecream,gelato,coffeeshops,bakeries,desserts,juicebars"
		params.Term = "ice cream coffee dessert"
		if isFamily {
			params.Term = "ice cream family-friendly dessert"
		}
	default:
		if isFamily {
			params.Categories = "icecream,gelato,desserts,bakeries"
			params.Term = "family dessert ice cream"
		} else {
			params.Categories = "desserts,gelato,coffeeshops,dessertbars,patisserie"
			params.Term = "specialty dessert coffee"
		}
	}
}
