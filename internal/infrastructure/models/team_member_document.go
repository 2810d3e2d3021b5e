package models

import "time"

// TeamMemberCollection is the document store collection for profiles.
const TeamMemberCollection = "teammembers"

// TeamMemberDocument is the document store shape of a profile. The id is
// the profile's UUID in canonical text form.
type TeamMemberDocument struct {
	ID            string    `bson:"_id"`
	Name          string    `bson:"name"`
	RegNumber     string    `bson:"regNumber"`
	Email         string    `bson:"email"`
	ContactNumber string    `bson:"contactNumber"`
	Department    string    `bson:"department"`
	Role          string    `bson:"role"`
	GithubLink    string    `bson:"githubLink"`
	LinkedinLink  string    `bson:"linkedinLink"`
	ResumeLink    string    `bson:"resumeLink"`
	PortfolioLink string    `bson:"portfolioLink"`
	Skills        []string  `bson:"skills"`
	ShortBio      string    `bson:"shortBio"`
	ImagePath     *string   `bson:"imagePath,omitempty"`
	CreatedAt     time.Time `bson:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt"`
}
