// Package listing turns raw request parameters into gorm query scopes:
// substring filters, sort orders and pagination windows for the camp and
// user listings.
package listing

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
)

// Scope is a composable query fragment, applied via db.Scopes.
type Scope = func(*gorm.DB) *gorm.DB

// Sort tokens accepted by the camp listing.
const (
	SortFeeAscending  = "ascending"
	SortFeeDescending = "descending"
	SortByParticipant = "sortByParticipant"
)

// ErrUnknownSort is returned for sort tokens outside the recognized set.
var ErrUnknownSort = errors.New("unknown sort token")

// CampSort maps a sort token to an order scope. The empty token means
// newest-first by id; anything else outside the recognized set is an error.
func CampSort(token string) (Scope, error) {
	switch token {
	case SortFeeAscending:
		return orderBy("camp_fee ASC"), nil
	case SortFeeDescending:
		return orderBy("camp_fee DESC"), nil
	case SortByParticipant:
		return orderBy("participant_count DESC"), nil
	case "":
		return Newest(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSort, token)
	}
}

// Newest orders newest-first by generated id.
func Newest() Scope {
	return orderBy("id DESC")
}

func orderBy(clause string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(clause)
	}
}

// CampSearch filters camps by case-insensitive substrings on name and
// location. Empty parameters add no predicate; both present are AND-combined.
func CampSearch(name, location string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if name != "" {
			db = db.Where("camp_name LIKE ?", "%"+name+"%")
		}
		if location != "" {
			db = db.Where("camp_location LIKE ?", "%"+location+"%")
		}
		return db
	}
}

// UserSearch filters users by case-insensitive substrings on name and email.
func UserSearch(name, email string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if name != "" {
			db = db.Where("name LIKE ?", "%"+name+"%")
		}
		if email != "" {
			db = db.Where("email LIKE ?", "%"+email+"%")
		}
		return db
	}
}

// Upcoming keeps camps scheduled at or after now. The cutoff is taken at
// call time so listings roll over as time passes.
func Upcoming(now time.Time) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("camp_time >= ?", now)
	}
}

// Previous keeps camps scheduled before now.
func Previous(now time.Time) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("camp_time < ?", now)
	}
}

// Page is a validated pagination window. Unbounded means the parameters were
// missing or malformed and the full matched set should be returned.
type Page struct {
	Offset    int
	Limit     int
	Unbounded bool
}

// ParsePage parses the raw currentPage/perPage parameters. Non-numeric or
// out-of-range values yield an unbounded page rather than an error: malformed
// pagination must never turn into a crashing or empty query.
func ParsePage(currentPage, perPage string) Page {
	page, errPage := strconv.Atoi(currentPage)
	size, errSize := strconv.Atoi(perPage)
	if errPage != nil || errSize != nil || page < 0 || size <= 0 {
		return Page{Unbounded: true}
	}
	return Page{Offset: page * size, Limit: size}
}

// Scope applies the window; unbounded pages pass the query through.
func (p Page) Scope(db *gorm.DB) *gorm.DB {
	if p.Unbounded {
		return db
	}
	return db.Offset(p.Offset).Limit(p.Limit)
}
