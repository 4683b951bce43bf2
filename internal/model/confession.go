package model

import "time"

// Moods a confession can be tagged with.
const (
	MoodJoy     = "joy"
	MoodSadness = "sadness"
	MoodAnger   = "anger"
	MoodFear    = "fear"
	MoodLove    = "love"
	MoodNeutral = "neutral"
)

// Moods lists the valid mood tags in display order.
var Moods = []string{MoodJoy, MoodSadness, MoodAnger, MoodFear, MoodLove, MoodNeutral}

// ValidMood reports whether mood is one of the fixed set.
func ValidMood(mood string) bool {
	for _, m := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// Confession is a single anonymous post as the server presents it.
type Confession struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	Mood        string    `json:"mood"`
	Reactions   int       `json:"reactions"`
	ReplyCount  int       `json:"reply_count"`
	Views       int       `json:"views"`
	Spotlighted bool      `json:"spotlighted"`
	Boosted     bool      `json:"boosted"`
	Mine        bool      `json:"mine"`
	Reacted     bool      `json:"reacted"`
	CreatedAt   time.Time `json:"created_at"`
}

// Reply is a response to a confession.
type Reply struct {
	ID           string    `json:"id"`
	ConfessionID string    `json:"confession_id"`
	Content      string    `json:"content"`
	Likes        int       `json:"likes"`
	Liked        bool      `json:"liked"`
	Mine         bool      `json:"mine"`
	CreatedAt    time.Time `json:"created_at"`
}

// Poll is a community poll with its options and tallies.
type Poll struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Options  []PollOption `json:"options"`
	Voted    bool         `json:"voted"`
	EndsAt   time.Time    `json:"ends_at"`
}

// PollOption is one choice in a poll.
type PollOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Votes int    `json:"votes"`
}
