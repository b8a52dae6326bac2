package avconv

import (
	"context"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avadapt/internal"
	"github.com/xaionaro-go/avadapt/logger"
	"github.com/xaionaro-go/avadapt/types"
)

// DictionaryItemsToAstiav builds a libav dictionary; nil items give a nil
// dictionary. The dictionary is freed by the garbage collector unless the
// caller frees it first (see internal.ClearFinalizer).
func DictionaryItemsToAstiav(
	ctx context.Context,
	s types.DictionaryItems,
) (*astiav.Dictionary, error) {
	if s == nil {
		return nil, nil
	}

	result := astiav.NewDictionary()
	internal.SetFinalizerFree(ctx, result)
	for _, opt := range s.Deduplicate() {
		logger.Tracef(ctx, "setting custom option: %s=%s", opt.Key, opt.Value)
		if err := result.Set(opt.Key, opt.Value, 0); err != nil {
			return nil, err
		}
	}
	return result, nil
}
