package internal

import "github.com/emirpasic/gods/maps/linkedhashmap"

// loxInstance holds the properties of a class instance or an object
// literal. Object literals have no class.
type loxInstance struct {
	class  *loxClass
	fields *linkedhashmap.Map
}

func newInstance(class *loxClass) *loxInstance {
	return &loxInstance{
		class:  class,
		fields: linkedhashmap.New(),
	}
}

// get reads an own property first, then a method bound to the instance
func (o *loxInstance) get(name string) (interface{}, bool) {
	if value, ok := o.fields.Get(name); ok {
		return value, true
	}
	if o.class != nil {
		if method := o.class.findMethod(name); method != nil {
			return method.bind(o), true
		}
	}
	return nil, false
}

func (o *loxInstance) set(name string, value interface{}) {
	o.fields.Put(name, value)
}

func (o *loxInstance) has(name string) bool {
	_, ok := o.fields.Get(name)
	return ok
}

// unset removes a property and returns its previous value
func (o *loxInstance) unset(name string) interface{} {
	value, ok := o.fields.Get(name)
	if !ok {
		return nil
	}
	o.fields.Remove(name)
	return value
}

func (o *loxInstance) keys() []interface{} {
	keys := o.fields.Keys()
	out := make([]interface{}, len(keys))
	for i, k := range keys {
		out[i] = loxString(k.(string))
	}
	return out
}
