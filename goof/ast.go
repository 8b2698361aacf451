package goof

type Node interface {
	Pos() Position
}

type Statement interface {
	Node
	stmtNode()
}

type Expression interface {
	Node
	exprNode()
}

// ExprStmt evaluates an expression for its value.
type ExprStmt struct {
	Expr     Expression
	position Position
}

func (s *ExprStmt) stmtNode()     {}
func (s *ExprStmt) Pos() Position { return s.position }

// AssignStmt binds Name to the value of Value.
type AssignStmt struct {
	Name     *Identifier
	Value    Expression
	position Position
}

func (s *AssignStmt) stmtNode()     {}
func (s *AssignStmt) Pos() Position { return s.position }

// RunLineStmt executes the single statement on line Line.
type RunLineStmt struct {
	Line     Expression
	position Position
}

func (s *RunLineStmt) stmtNode()     {}
func (s *RunLineStmt) Pos() Position { return s.position }

// RunRangeStmt executes lines From through To inclusive.
type RunRangeStmt struct {
	From     Expression
	To       Expression
	position Position
}

func (s *RunRangeStmt) stmtNode()     {}
func (s *RunRangeStmt) Pos() Position { return s.position }

type WriteStmt struct {
	Value    Expression
	position Position
}

func (s *WriteStmt) stmtNode()     {}
func (s *WriteStmt) Pos() Position { return s.position }

// GuardStmt runs Body only when Condition coerces to yes.
type GuardStmt struct {
	Body      Statement
	Condition Expression
	position  Position
}

func (s *GuardStmt) stmtNode()     {}
func (s *GuardStmt) Pos() Position { return s.position }

// BlankStmt fills the slot of an empty or comment-only line.
type BlankStmt struct {
	position Position
}

func (s *BlankStmt) stmtNode()     {}
func (s *BlankStmt) Pos() Position { return s.position }

type EndStmt struct {
	position Position
}

func (s *EndStmt) stmtNode()     {}
func (s *EndStmt) Pos() Position { return s.position }

// ReadExpr reads one line from the console.
type ReadExpr struct {
	position Position
}

func (e *ReadExpr) exprNode()     {}
func (e *ReadExpr) Pos() Position { return e.position }

type UnaryExpr struct {
	Operator TokenType
	Right    Expression
	position Position
}

func (e *UnaryExpr) exprNode()     {}
func (e *UnaryExpr) Pos() Position { return e.position }

type BinaryExpr struct {
	Left     Expression
	Operator TokenType
	Right    Expression
	position Position
}

func (e *BinaryExpr) exprNode()     {}
func (e *BinaryExpr) Pos() Position { return e.position }

type Identifier struct {
	Name     string
	position Position
}

func (e *Identifier) exprNode()     {}
func (e *Identifier) Pos() Position { return e.position }

// IntegerLiteral keeps the source digits so decimal composition can reuse them.
type IntegerLiteral struct {
	Value    int64
	Digits   string
	position Position
}

func (e *IntegerLiteral) exprNode()     {}
func (e *IntegerLiteral) Pos() Position { return e.position }

type FloatLiteral struct {
	Value    float64
	position Position
}

func (e *FloatLiteral) exprNode()     {}
func (e *FloatLiteral) Pos() Position { return e.position }

type TextLiteral struct {
	Value    string
	position Position
}

func (e *TextLiteral) exprNode()     {}
func (e *TextLiteral) Pos() Position { return e.position }

type ChoiceLiteral struct {
	Value    bool
	position Position
}

func (e *ChoiceLiteral) exprNode()     {}
func (e *ChoiceLiteral) Pos() Position { return e.position }
