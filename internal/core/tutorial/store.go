// Copyright (c) 2026 Tutoria. All rights reserved.

package tutorial

import (
	"context"

	"github.com/tutoria-app/tutoria/pkg/pagination"
)

// Repository defines the data access contract.
//
// OwnerID also satisfies the authorization guard's owner lookup, so the
// ownership check never loads the full row.
type Repository interface {
	List(context context.Context, filter Filter, params pagination.Params) ([]*Tutorial, int, error)
	Get(context context.Context, id int64) (*Tutorial, error)
	OwnerID(context context.Context, resourceID int64) (int64, error)
	Create(context context.Context, tutorial *Tutorial) error
	Update(context context.Context, tutorial *Tutorial) error
	Delete(context context.Context, id int64) error
}
