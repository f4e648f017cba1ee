package models

import "gorm.io/gorm"

// SocialLinks holds the optional social network URLs of a profile.
// Stored as flat columns with a social_ prefix.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Profile is the public portfolio record owned by exactly one user.
type Profile struct {
	ID             string      `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID         string      `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	User           *User       `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Company        string      `json:"company,omitempty"`
	Website        string      `json:"website,omitempty"`
	Location       string      `json:"location,omitempty"`
	Bio            string      `json:"bio,omitempty"`
	Status         string      `json:"status"`
	GithubUsername string      `json:"githubusername,omitempty"`
	Skills         []string    `json:"skills" gorm:"serializer:json;type:text"`
	Social         SocialLinks `json:"social" gorm:"embedded;embeddedPrefix:social_"`
	gorm.Model
}

// ProfileInput is the POST /profile request body. Every field is a pointer so
// that "absent" and "set to empty" stay distinguishable: a nil field must leave
// the stored value untouched.
type ProfileInput struct {
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Bio            *string `json:"bio"`
	Status         *string `json:"status" validate:"required,min=1"`
	GithubUsername *string `json:"githubusername"`
	Skills         *string `json:"skills" validate:"required,min=1"`
	Youtube        *string `json:"youtube"`
	Twitter        *string `json:"twitter"`
	Facebook       *string `json:"facebook"`
	Linkedin       *string `json:"linkedin"`
	Instagram      *string `json:"instagram"`
}

// SocialPatch mirrors SocialLinks with presence-aware fields.
type SocialPatch struct {
	Youtube   *string
	Twitter   *string
	Facebook  *string
	Linkedin  *string
	Instagram *string
}

// ProfilePatch is the sparse update set applied by the upsert: only non-nil
// fields (and a non-nil Skills slice) are written to the stored record.
type ProfilePatch struct {
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	Status         *string
	GithubUsername *string
	Skills         []string
	Social         SocialPatch
}

// Apply merges the patch into p, leaving fields the patch does not carry
// untouched.
func (patch *ProfilePatch) Apply(p *Profile) {
	if patch.Company != nil {
		p.Company = *patch.Company
	}
	if patch.Website != nil {
		p.Website = *patch.Website
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Bio != nil {
		p.Bio = *patch.Bio
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.GithubUsername != nil {
		p.GithubUsername = *patch.GithubUsername
	}
	if patch.Skills != nil {
		p.Skills = patch.Skills
	}
	if patch.Social.Youtube != nil {
		p.Social.Youtube = *patch.Social.Youtube
	}
	if patch.Social.Twitter != nil {
		p.Social.Twitter = *patch.Social.Twitter
	}
	if patch.Social.Facebook != nil {
		p.Social.Facebook = *patch.Social.Facebook
	}
	if patch.Social.Linkedin != nil {
		p.Social.Linkedin = *patch.Social.Linkedin
	}
	if patch.Social.Instagram != nil {
		p.Social.Instagram = *patch.Social.Instagram
	}
}
