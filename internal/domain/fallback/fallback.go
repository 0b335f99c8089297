// Package fallback holds the local default lists substituted when a remote
// collection is empty or a fetch fails. They are empty literals, matching
// the deployed site: the degraded state renders "no content", not demo
// content. Replace a list here to ship placeholder data instead.
//
// Fallback lists are substituted wholesale, never merged with remote data.
package fallback

import "github.com/rohithbabu/foliohub/internal/domain/models"

// Per-kind fallback lists.
var (
	About          = []models.About{}
	Education      = []models.Education{}
	Hobbies        = []models.Hobby{}
	Projects       = []models.Project{}
	Skills         = []models.Skill{}
	Achievements   = []models.Achievement{}
	Certifications = []models.Certification{}
	SocialLinks    = []models.SocialLink{}
)
