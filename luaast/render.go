package luaast

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// indentUnit is the indentation written per nesting level
const indentUnit = "  "

// Renderer writes a Lua syntax tree as source text.  Write errors are sticky:
// after the first one, all output is discarded and the error is returned from
// Render.
type Renderer struct {
	w      *bufio.Writer
	depth  int
	err    error
	nBytes int
}

// NewRenderer creates a renderer writing to w
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: bufio.NewWriter(w)}
}

// Render writes each statement in order and flushes the output
func (r *Renderer) Render(stmts ...Statement) error {
	for _, stmt := range stmts {
		stmt.render(r)
	}

	if r.err == nil {
		r.err = r.w.Flush()
	}

	return r.err
}

// BytesWritten returns the number of bytes of Lua source produced so far
func (r *Renderer) BytesWritten() int {
	return r.nBytes
}

// RenderString renders the statements to a string
func RenderString(stmts ...Statement) string {
	sb := &strings.Builder{}

	// writing to a strings.Builder never fails
	_ = NewRenderer(sb).Render(stmts...)

	return sb.String()
}

// -----------------------------------------------------------------------------

func (r *Renderer) write(s string) {
	if r.err != nil {
		return
	}

	n, err := r.w.WriteString(s)
	r.nBytes += n
	r.err = err
}

func (r *Renderer) beginLine() {
	r.write(strings.Repeat(indentUnit, r.depth))
}

func (r *Renderer) endLine() {
	r.write("\n")
}

// renderBlock renders a statement list one level deeper than the current line
func (r *Renderer) renderBlock(body *StatementList) {
	r.depth++
	if body != nil {
		body.render(r)
	}
	r.depth--
}

// -----------------------------------------------------------------------------

func (in *IdentifierName) render(r *Renderer) {
	r.write(in.Value)
}

func (ma *MemberAccess) render(r *Renderer) {
	ma.Target.render(r)
	r.write(".")
	ma.Member.render(r)
}

func (sl *StringLiteral) render(r *Renderer) {
	r.write(strconv.Quote(sl.Value))
}

func (*TableInitializer) render(r *Renderer) {
	r.write("{}")
}

func (inv *Invocation) render(r *Renderer) {
	inv.Target.render(r)
	r.write("(")
	for i, arg := range inv.Args {
		if i > 0 {
			r.write(", ")
		}

		arg.render(r)
	}
	r.write(")")
}

func (fe *FunctionExpression) render(r *Renderer) {
	r.write("function (")
	for i, param := range fe.Params {
		if i > 0 {
			r.write(", ")
		}

		param.render(r)
	}
	r.write(")")
	r.endLine()

	r.renderBlock(fe.Body)

	r.beginLine()
	r.write("end")
}

// -----------------------------------------------------------------------------

func (sc *ShortComment) render(r *Renderer) {
	r.beginLine()
	r.write("--" + sc.Text)
	r.endLine()
}

func (ld *LocalDeclaration) render(r *Renderer) {
	r.beginLine()
	r.write("local ")
	ld.Name.render(r)

	if ld.Value != nil {
		r.write(" = ")
		ld.Value.render(r)
	}

	r.endLine()
}

func (a *Assignment) render(r *Renderer) {
	r.beginLine()
	a.Left.render(r)
	r.write(" = ")
	a.Right.render(r)
	r.endLine()
}

func (es *ExpressionStatement) render(r *Renderer) {
	r.beginLine()
	es.Expr.render(r)
	r.endLine()
}

func (rs *ReturnStatement) render(r *Renderer) {
	r.beginLine()
	r.write("return")
	for i, v := range rs.Values {
		if i == 0 {
			r.write(" ")
		} else {
			r.write(", ")
		}

		v.render(r)
	}
	r.endLine()
}

func (sl *StatementList) render(r *Renderer) {
	for _, stmt := range sl.Statements {
		stmt.render(r)
	}
}

func (nd *NamespaceDeclaration) render(r *Renderer) {
	fn := &FunctionExpression{Params: []*IdentifierName{Namespace}, Body: nd.Body}

	r.beginLine()
	NewInvocation(NamespaceDeclare, &StringLiteral{Value: nd.Name}, fn).render(r)
	r.endLine()
}
