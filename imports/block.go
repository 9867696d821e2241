package imports

import "github.com/000hahaha000/CSharp.lua/luaast"

// BuildBlock appends the registration block for the resolved entries to the
// import area and returns it.  A nil area starts a new one.  The block is one
// value-less local declaration per alias followed by a single call:
//
//	System.import(function (global)
//	  alias = global.Prefix
//	  ...
//	end)
//
// Declarations and bindings both follow the order of resolved.
func BuildBlock(area *luaast.StatementList, resolved []Resolution) *luaast.StatementList {
	if area == nil {
		area = &luaast.StatementList{}
	}

	for _, res := range resolved {
		area.Add(&luaast.LocalDeclaration{Name: luaast.NewIdentifier(res.Alias)})
	}

	fn := luaast.NewFunctionExpression(luaast.Global)
	for _, res := range resolved {
		fn.Body.Add(binding(res))
	}

	area.Add(&luaast.ExpressionStatement{Expr: luaast.NewInvocation(luaast.UsingDeclare, fn)})
	return area
}

// binding creates the assignment for a single alias
func binding(res Resolution) *luaast.Assignment {
	var right luaast.Expression
	if res.Strategy == AncestorReuse {
		right = luaast.NewIdentifier(res.Prefix)
	} else {
		right = &luaast.MemberAccess{Target: luaast.Global, Member: luaast.NewIdentifier(res.Prefix)}
	}

	return &luaast.Assignment{Left: luaast.NewIdentifier(res.Alias), Right: right}
}
