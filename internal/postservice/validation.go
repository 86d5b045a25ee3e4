package postservice

import (
	"time"

	"github.com/sushihentaime/postify/internal/common"
)

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "must be provided")
}

func validateSlug(v *common.Validator, slug string) {
	v.Check(slug != "", "slug", "must be provided")
}

func validateDescription(v *common.Validator, description string) {
	v.Check(description != "", "description", "must be provided")
}

func validateDate(v *common.Validator, date time.Time) {
	v.Check(!date.IsZero(), "date", "must be provided")
}

func validateAuthorID(v *common.Validator, id int) {
	v.Check(id > 0, "author_id", "must be greater than zero")
}
