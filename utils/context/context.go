package context

import (
	"context"

	"github.com/muhammadheryan/marketplace/constant"
)

func GetSellerID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.SellerIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
