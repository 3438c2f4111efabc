package pipeline

import "github.com/blausm/dentscout/internal/types"

// PlaceholderServices is the deterministic dataset substituted when a
// run finds zero taxonomy matches, so the consumer artifact is never
// empty. Callers can tell it apart from real data via Result.Placeholder.
func PlaceholderServices() []types.Service {
	return []types.Service{
		{
			ID:   "1",
			Name: "Gentle Care Dental",
			Description: "Gentle Care Dental is a sensory-friendly practice experienced with " +
				"neurodivergent patients. Quiet rooms, dimmed lights and extended " +
				"appointment slots are available on request.",
			ShortDescription: types.Shorten("Gentle Care Dental is a sensory-friendly practice experienced with " +
				"neurodivergent patients. Quiet rooms, dimmed lights and extended " +
				"appointment slots are available on request."),
			Category:      "Dentist",
			Address:       "120 W 31st St, New York, NY 10001",
			Latitude:      40.7484,
			Longitude:     -73.9936,
			Phone:         "(212) 555-0134",
			Website:       "https://gentlecaredental.example.com",
			Hours:         types.DefaultHours(),
			AverageRating: 4.5,
			Reviews: []types.Review{
				{
					ID:        "1-1",
					ServiceID: "1",
					Rating:    5,
					Comment:   "They were wonderful with my autistic son, calm and patient the whole visit.",
					Author:    "Placeholder Review",
					Source:    "Placeholder",
					Date:      "2025-01-15",
					Mentions: []types.Mention{
						{
							Keyword:        "autistic",
							Context:        "They were wonderful with my autistic son, calm and patient the whole visit.",
							Sentiment:      types.SentimentPositive,
							SentimentScore: 0.62,
						},
					},
				},
			},
			Mentions: []types.Mention{
				{
					Keyword:        "neurodivergent",
					Context:        "sensory-friendly practice experienced with neurodivergent patients.",
					Source:         "Description",
					Sentiment:      types.SentimentPositive,
					SentimentScore: 0.29,
				},
				{
					Keyword:        "autistic",
					Context:        "They were wonderful with my autistic son, calm and patient the whole visit.",
					Source:         "Review by Placeholder Review",
					Sentiment:      types.SentimentPositive,
					SentimentScore: 0.62,
				},
			},
		},
		{
			ID:   "2",
			Name: "Calm Horizons Dentistry",
			Description: "Calm Horizons Dentistry offers appointments designed for patients " +
				"with anxiety and sensory sensitivities, including pre-visit tours " +
				"and noise-reducing headphones.",
			ShortDescription: types.Shorten("Calm Horizons Dentistry offers appointments designed for patients " +
				"with anxiety and sensory sensitivities, including pre-visit tours " +
				"and noise-reducing headphones."),
			Category:      "Dentist",
			Address:       "58 Court St, Brooklyn, NY 11201",
			Latitude:      40.6937,
			Longitude:     -73.9910,
			Phone:         "(718) 555-0188",
			Hours:         types.DefaultHours(),
			AverageRating: 4.0,
			Mentions: []types.Mention{
				{
					Keyword:        "anxiety",
					Context:        "appointments designed for patients with anxiety and sensory sensitivities,",
					Source:         "Description",
					Sentiment:      types.SentimentNeutral,
					SentimentScore: 0,
				},
				{
					Keyword:        "sensory sensitivities",
					Context:        "appointments designed for patients with anxiety and sensory sensitivities,",
					Source:         "Description",
					Sentiment:      types.SentimentNeutral,
					SentimentScore: 0,
				},
			},
		},
	}
}
