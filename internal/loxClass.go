package internal

type loxClass struct {
	name        string
	superclass  *loxClass
	methods     map[string]*loxFunction
	constructor *loxFunction
}

func (c *loxClass) findMethod(name string) *loxFunction {
	if method, ok := c.methods[name]; ok {
		return method
	}
	if c.superclass != nil {
		return c.superclass.findMethod(name)
	}
	return nil
}

func (c *loxClass) arity() int {
	if c.constructor != nil {
		return c.constructor.arity()
	}
	return 0
}

func (c *loxClass) call(exec *exec, arguments []interface{}, blame *token) (interface{}, error) {
	instance := newInstance(c)
	if c.constructor != nil {
		if _, err := c.constructor.bind(instance).call(exec, arguments, blame); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
