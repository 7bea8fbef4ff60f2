package store

import (
	"reflect"

	"dario.cat/mergo"
)

// Merge is the default Updater. Its behaviour depends on the static kind of S:
//
//   - struct: non-zero fields of patch override the current ones (mergo
//     WithOverride). Zero fields are treated as "not set".
//   - map: every key of patch is assigned, zero values included.
//   - pointer to struct: like struct, on a copy of the pointed-to value.
//   - anything else: patch replaces the state.
//
// The current state is never mutated; Merge works on a deep copy.
func Merge[S any](current, patch S) (S, error) {
	t := reflect.TypeOf((*S)(nil)).Elem()

	switch {
	case t.Kind() == reflect.Struct:
		next := Clone(current)
		if err := mergo.Merge(&next, patch, mergo.WithOverride); err != nil {
			return current, err
		}
		return next, nil

	case t.Kind() == reflect.Map:
		return assignMap(current, patch), nil

	case t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Struct:
		cv, pv := reflect.ValueOf(current), reflect.ValueOf(patch)
		if pv.IsNil() {
			return current, nil
		}
		if cv.IsNil() {
			return patch, nil
		}
		next := Clone(current)
		if err := mergo.Merge(next, patch, mergo.WithOverride); err != nil {
			return current, err
		}
		return next, nil

	default:
		return patch, nil
	}
}

func assignMap[S any](current, patch S) S {
	cv, pv := reflect.ValueOf(current), reflect.ValueOf(patch)
	if pv.IsNil() {
		return current
	}

	next := reflect.MakeMapWithSize(cv.Type(), cv.Len()+pv.Len())
	if !cv.IsNil() {
		iter := cv.MapRange()
		for iter.Next() {
			next.SetMapIndex(iter.Key(), iter.Value())
		}
	}
	iter := pv.MapRange()
	for iter.Next() {
		next.SetMapIndex(iter.Key(), iter.Value())
	}
	return next.Interface().(S)
}
