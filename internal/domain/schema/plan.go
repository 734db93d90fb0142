package schema

// Plan collects operations produced by the builders and keeps the first
// build error, so migrations can list their steps without checking each one.
//
//	var p schema.Plan
//	p.Add(schema.CreateTable("kb_info").Column(...).Build())
//	p.Add(schema.DropTable("old"))
//	return p.Operations()
type Plan struct {
	ops []Operation
	err error
}

// Add appends op, or records err if it is the first failure
func (p *Plan) Add(op Operation, err error) *Plan {
	if p.err != nil {
		return p
	}
	if err != nil {
		p.err = err
		return p
	}
	p.ops = append(p.ops, op)
	return p
}

// Append adds already-built operations
func (p *Plan) Append(ops ...Operation) *Plan {
	if p.err == nil {
		p.ops = append(p.ops, ops...)
	}
	return p
}

// Operations returns the collected operations or the first error
func (p *Plan) Operations() ([]Operation, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.ops, nil
}
