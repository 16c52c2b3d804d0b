package seed

import (
	"context"

	"github.com/yigit/clubr/internal/app/catalog"
	"github.com/yigit/clubr/internal/app/models"
)

// CurrentUserID is the sender id used for messages written by the session's user.
const CurrentUserID = "currentUser"

// Interests is the tag list offered on the interest-selection screen.
var Interests = []string{
	"Media",
	"Sports",
	"Politics",
	"Fashion",
	"Arts",
	"Technology",
	"Business",
	"Music",
	"Volunteering",
	"Gaming",
	"Science",
	"Culture",
}

func unsplash(photo string) string {
	return "https://images.unsplash.com/" + photo + "?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080"
}

var (
	journalCover    = unsplash("photo-1711961530500-6e370832c9c6")
	badmintonCover  = unsplash("photo-1616562007889-186b6cf7fb53")
	parliamentCover = unsplash("photo-1742252306330-453455bd7526")
	vogueCover      = unsplash("photo-1543728069-a3f97c5a2f32")
	cfrcCover       = unsplash("photo-1760895223972-57b1d858d77e")
	theatreCover    = unsplash("photo-1732968452564-17a1983f8f71")
	engSocCover     = unsplash("photo-1581092334651-ddf26d9a09d0")
	commerceCover   = unsplash("photo-1657812159103-1b2a52a7f5e8")
)

// DefaultUser is the demo student. They administer Queen's Journal and the Badminton Team.
func DefaultUser() models.User {
	return models.User{
		ID:         CurrentUserID,
		Name:       "Alex Thompson",
		Email:      "alex.thompson@queensu.ca",
		Bio:        "Third-year Commerce student passionate about community building and trying new activities! Love meeting new people and exploring different interests.",
		Location:   "Kingston, ON",
		JoinDate:   "September 2023",
		Interests:  []string{},
		AdminClubs: []string{"1", "2"},
	}
}

// Clubs returns the club fixtures. Clubs 1 and 2 start out followed.
func Clubs() []models.Club {
	return []models.Club{
		{
			ID:          "1",
			Name:        "Queen's Journal",
			Description: "Queen's independent student newspaper since 1873. Join our team of writers, editors, photographers, and designers to cover campus news, arts, sports, and more.",
			CoverImage:  journalCover,
			Category:    "Media",
			MemberCount: 87,
			IsFollowing: true,
			Admins:      []string{"user1", "user2"},
		},
		{
			ID:          "2",
			Name:        "Queen's Badminton Team",
			Description: "Competitive and recreational badminton for all skill levels. Weekly practices, tournaments, and a great community of athletes. Tryouts held each September!",
			CoverImage:  badmintonCover,
			Category:    "Sports",
			MemberCount: 45,
			IsFollowing: true,
			Admins:      []string{"user3"},
		},
		{
			ID:          "3",
			Name:        "Queen's Model Parliament",
			Description: "Experience Canadian parliamentary democracy firsthand. Debate current issues, develop public speaking skills, and network with politically engaged students.",
			CoverImage:  parliamentCover,
			Category:    "Politics",
			MemberCount: 63,
			Admins:      []string{"user4"},
		},
		{
			ID:          "4",
			Name:        "Vogue Charity Fashion Show",
			Description: "Queen's largest student-run fashion show raising funds for local charities. Designers, models, photographers, and organizers all welcome!",
			CoverImage:  vogueCover,
			Category:    "Fashion",
			MemberCount: 128,
			Admins:      []string{"user5"},
		},
		{
			ID:          "5",
			Name:        "CFRC 101.9 FM",
			Description: "Queen's campus-community radio station. Host your own show, learn audio production, and share your voice with Kingston and beyond!",
			CoverImage:  cfrcCover,
			Category:    "Media",
			MemberCount: 52,
			Admins:      []string{"user6"},
		},
		{
			ID:          "6",
			Name:        "Queen's Musical Theatre",
			Description: "Bringing Broadway to campus! Audition for our main stage productions, join the crew, or help with choreography, set design, and costumes.",
			CoverImage:  theatreCover,
			Category:    "Arts",
			MemberCount: 94,
			Admins:      []string{"user7"},
		},
		{
			ID:          "7",
			Name:        "Queen's Engineering Society",
			Description: "Representing all engineering students. Plan events, network with industry professionals, and work on exciting technical projects and competitions.",
			CoverImage:  engSocCover,
			Category:    "Technology",
			MemberCount: 267,
			Admins:      []string{"user8"},
		},
		{
			ID:          "8",
			Name:        "Commerce Society",
			Description: "Building the next generation of business leaders. Career development, networking events, case competitions, and social activities for Smith School students.",
			CoverImage:  commerceCover,
			Category:    "Business",
			MemberCount: 312,
			Admins:      []string{"user9"},
		},
	}
}

// Posts returns the post fixtures, newest first.
func Posts() []models.Post {
	return []models.Post{
		{
			ID:         "p1",
			ClubID:     "1",
			ClubName:   "Queen's Journal",
			ClubAvatar: journalCover,
			Content:    "This week's edition is out! Featuring an exclusive interview with the AMS President and coverage of Homecoming 2025. Pick up your copy around campus!",
			CreatedAt:  "2 hours ago",
			Likes:      34,
		},
		{
			ID:         "p2",
			ClubID:     "2",
			ClubName:   "Queen's Badminton Team",
			ClubAvatar: badmintonCover,
			Content:    "Huge win against U of T this weekend! 5-2 victory. Amazing teamwork everyone - OUA championships here we come!",
			Image:      badmintonCover,
			CreatedAt:  "5 hours ago",
			Likes:      67,
		},
		{
			ID:         "p3",
			ClubID:     "1",
			ClubName:   "Queen's Journal",
			ClubAvatar: journalCover,
			Content:    "We're hiring! Looking for writers for our News, Arts, and Sports sections. No experience necessary - just passion for storytelling. Applications due Friday!",
			CreatedAt:  "1 day ago",
			Likes:      28,
		},
	}
}

// Events returns the event fixtures.
func Events() []models.Event {
	return []models.Event{
		{
			ID:          "e1",
			ClubID:      "1",
			ClubName:    "Queen's Journal",
			Title:       "Journalism Workshop: Investigative Reporting",
			Date:        "2025-11-05",
			Time:        "7:00 PM",
			Location:    "Journal Office - Carruthers Hall",
			Description: "Learn investigative journalism techniques from our senior editors. Pizza provided!",
		},
		{
			ID:          "e2",
			ClubID:      "2",
			ClubName:    "Queen's Badminton Team",
			Title:       "OUA Championship Tournament",
			Date:        "2025-11-08",
			Time:        "9:00 AM",
			Location:    "Queen's Athletics & Recreation Centre",
			Description: "Come support the Gaels as we compete for the OUA title! Spectators welcome and encouraged!",
		},
		{
			ID:          "e3",
			ClubID:      "4",
			ClubName:    "Vogue Charity Fashion Show",
			Title:       "Annual Charity Fashion Show",
			Date:        "2025-11-10",
			Time:        "7:00 PM",
			Location:    "Grant Hall",
			Description: "Our biggest event of the year! Showcasing student designers and raising funds for the Kingston Youth Shelter. Tickets on sale now!",
		},
		{
			ID:          "e4",
			ClubID:      "3",
			ClubName:    "Queen's Model Parliament",
			Title:       "Fall Parliamentary Debate Session",
			Date:        "2025-11-15",
			Time:        "6:30 PM",
			Location:    "Policy Studies Building",
			Description: "This session: Climate policy and Indigenous reconciliation. All students welcome to participate or observe.",
		},
		{
			ID:          "e5",
			ClubID:      "6",
			ClubName:    "Queen's Musical Theatre",
			Title:       "Spring Musical Auditions",
			Date:        "2025-11-06",
			Time:        "6:00 PM",
			Location:    "Theological Hall",
			Description: "Auditions for our spring production of \"Into the Woods\"! Prepare 16 bars of a musical theatre song. All voice types needed!",
		},
		{
			ID:          "e6",
			ClubID:      "5",
			ClubName:    "CFRC 101.9 FM",
			Title:       "New DJ Training Session",
			Date:        "2025-11-12",
			Time:        "5:00 PM",
			Location:    "CFRC Studio - Carruthers Hall",
			Description: "Want to host your own radio show? Come learn the basics of broadcasting, audio equipment, and FCC regulations.",
		},
	}
}

// Chats returns the chat fixtures.
func Chats() []models.Chat {
	return []models.Chat{
		{
			ID:              "c1",
			ClubID:          "1",
			ClubName:        "Queen's Journal",
			ClubAvatar:      journalCover,
			LastMessage:     "Our next meeting is November 5th at 7 PM in Carruthers Hall...",
			LastMessageTime: "10:35 AM",
			UnreadCount:     0,
			Messages: []models.Message{
				{
					ID:         "m1",
					SenderID:   "admin1",
					SenderName: "Emma - Journal Editor",
					Content:    "Thanks for your interest in the Queen's Journal! We'd love to have you on our writing team.",
					Timestamp:  "10:30 AM",
					IsRead:     true,
				},
				{
					ID:         "m2",
					SenderID:   CurrentUserID,
					SenderName: "You",
					Content:    "Thank you! When is the next writers meeting?",
					Timestamp:  "10:32 AM",
					IsRead:     true,
				},
				{
					ID:         "m3",
					SenderID:   "admin1",
					SenderName: "Emma - Journal Editor",
					Content:    "Our next meeting is November 5th at 7 PM in Carruthers Hall. We'll have a journalism workshop too. Hope to see you there!",
					Timestamp:  "10:35 AM",
					IsRead:     true,
				},
			},
		},
		{
			ID:              "c2",
			ClubID:          "2",
			ClubName:        "Queen's Badminton Team",
			ClubAvatar:      badmintonCover,
			LastMessage:     "Practice is at 7pm tomorrow. Don't forget your racket!",
			LastMessageTime: "Yesterday",
			UnreadCount:     2,
			Messages:        []models.Message{},
		},
	}
}

// DefaultCatalog assembles every fixture into a fresh catalog.
func DefaultCatalog() *catalog.Catalog {
	interests := make([]string, len(Interests))
	copy(interests, Interests)
	return &catalog.Catalog{
		User:      DefaultUser(),
		Clubs:     Clubs(),
		Posts:     Posts(),
		Events:    Events(),
		Chats:     Chats(),
		Interests: interests,
	}
}

// FixtureSource serves DefaultCatalog.
type FixtureSource struct{}

// NewFixtureSource creates a catalog source backed by the static fixtures
func NewFixtureSource() *FixtureSource {
	return &FixtureSource{}
}

// Load implements catalog.Source.
func (FixtureSource) Load(_ context.Context) (*catalog.Catalog, error) {
	return DefaultCatalog(), nil
}
