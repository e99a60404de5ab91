package fighter

// Expression is a script condition. Expressions are only ever rendered, never
// evaluated.
type Expression interface {
	isExpression()
}

// Requirement names a built-in engine test such as "OnGround".
type Requirement string

// Operator is a binary comparison or logical operator.
type Operator string

const (
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
	OpEqual        Operator = "=="
	OpNotEqual     Operator = "!="
	OpGreaterEqual Operator = ">="
	OpGreater      Operator = ">"
	OpAnd          Operator = "&&"
	OpOr           Operator = "||"
)

// Nullary is a requirement that takes no argument.
type Nullary struct {
	Requirement Requirement
}

// Unary is a requirement applied to one operand.
type Unary struct {
	Requirement Requirement
	Operand     Expression
}

// Binary combines two expressions with Operator.
type Binary struct {
	Left     Expression
	Operator Operator
	Right    Expression
}

// Not negates Expr.
type Not struct {
	Expr Expression
}

// Variable reads a script variable by id.
type Variable struct {
	ID uint32
}

// Value is an integer literal.
type Value struct {
	V int32
}

// Scalar is a floating point literal.
type Scalar struct {
	V float32
}

func (Nullary) isExpression()  {}
func (Unary) isExpression()    {}
func (Binary) isExpression()   {}
func (Not) isExpression()      {}
func (Variable) isExpression() {}
func (Value) isExpression()    {}
func (Scalar) isExpression()   {}
