package database

import (
	"github.com/awesome-cap/hashmap"
)

// concurrentMap is a string keyed view over a hashmap.
type concurrentMap struct {
	set     func(key string, value interface{})
	get     func(key string) (interface{}, bool)
	del     func(key string)
	foreach func(fn func(value interface{}))
}

func newConcurrentMap() concurrentMap {
	m := hashmap.New()
	return concurrentMap{
		set: func(key string, value interface{}) {
			m.Set(key, value)
		},
		get: func(key string) (interface{}, bool) {
			return m.Get(key)
		},
		del: func(key string) {
			m.Del(key)
		},
		foreach: func(fn func(value interface{})) {
			m.Foreach(func(e *hashmap.Entry) {
				fn(e.Value())
			})
		},
	}
}
