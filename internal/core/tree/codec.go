package tree

import (
	"go.trai.ch/quill/internal/core/script"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Persisted trees carry structure only. Options are re-applied on every compile, resolved
// imports are re-resolved, and the cached tail of IfNode chains is recomputed on load.

type nodeDTO struct {
	Kind      string        `yaml:"kind"`
	Line      int           `yaml:"line,omitempty"`
	Name      string        `yaml:"name,omitempty"`
	Value     string        `yaml:"value,omitempty"`
	Expr      *exprDTO      `yaml:"expr,omitempty"`
	From      *exprDTO      `yaml:"from,omitempty"`
	To        *exprDTO      `yaml:"to,omitempty"`
	Exclusive bool          `yaml:"exclusive,omitempty"`
	Guarded   bool          `yaml:"guarded,omitempty"`
	Fragments []fragmentDTO `yaml:"fragments,omitempty"`
	Params    []paramDTO    `yaml:"params,omitempty"`
	Args      []exprDTO     `yaml:"args,omitempty"`
	Keywords  []keywordDTO  `yaml:"keywords,omitempty"`
	Else      *nodeDTO      `yaml:"else,omitempty"`
	Children  []nodeDTO     `yaml:"children,omitempty"`
}

type exprDTO struct {
	Raw string `yaml:"raw,omitempty"`
	Var string `yaml:"var,omitempty"`
}

type fragmentDTO struct {
	Text string   `yaml:"text,omitempty"`
	Expr *exprDTO `yaml:"expr,omitempty"`
}

type paramDTO struct {
	Name    string   `yaml:"name"`
	Default *exprDTO `yaml:"default,omitempty"`
}

type keywordDTO struct {
	Name  string   `yaml:"name"`
	Value *exprDTO `yaml:"value"`
}

// Marshal encodes a tree for persistence.
func Marshal(root *RootNode) ([]byte, error) {
	dto, err := encodeNode(root)
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(dto)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to marshal tree")
	}
	return data, nil
}

// Unmarshal decodes a tree produced by Marshal.
func Unmarshal(data []byte) (*RootNode, error) {
	var dto nodeDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal tree")
	}
	n, err := decodeNode(&dto)
	if err != nil {
		return nil, err
	}
	root, ok := n.(*RootNode)
	if !ok {
		return nil, zerr.With(zerr.New("persisted tree has no root"), "kind", dto.Kind)
	}
	return root, nil
}

// Clone returns a structural deep copy of root, sharing no nodes or expressions with it.
// Like Marshal it drops options and resolved import state.
func Clone(root *RootNode) (*RootNode, error) {
	dto, err := encodeNode(root)
	if err != nil {
		return nil, err
	}
	n, err := decodeNode(dto)
	if err != nil {
		return nil, err
	}
	return n.(*RootNode), nil //nolint:forcetypeassert // encoded from a root
}

//nolint:cyclop // one case per node kind
func encodeNode(n Node) (*nodeDTO, error) {
	dto := &nodeDTO{Kind: n.Kind().String(), Line: n.Line()}

	switch v := n.(type) {
	case *RootNode:
	case *RuleNode:
		dto.Fragments = encodeFragments(v.Rule)
	case *PropNode:
		dto.Fragments = encodeFragments(v.Name)
		dto.Expr = encodeExpr(v.Value)
	case *VariableNode:
		dto.Name = v.Name
		dto.Expr = encodeExpr(v.Expr)
		dto.Guarded = v.Guarded
	case *IfNode:
		dto.Expr = encodeExpr(v.Expr)
		if v.Else != nil {
			next, err := encodeNode(v.Else)
			if err != nil {
				return nil, err
			}
			dto.Else = next
		}
	case *ForNode:
		dto.Name = v.Var
		dto.From = encodeExpr(v.From)
		dto.To = encodeExpr(v.To)
		dto.Exclusive = v.Exclusive
	case *EachNode:
		dto.Name = v.Var
		dto.Expr = encodeExpr(v.List)
	case *WhileNode:
		dto.Expr = encodeExpr(v.Expr)
	case *FunctionNode:
		dto.Name = v.Name
		dto.Params = encodeParams(v.Args)
	case *MixinDefNode:
		dto.Name = v.Name
		dto.Params = encodeParams(v.Args)
	case *MixinNode:
		dto.Name = v.Name
		for _, a := range v.Args {
			dto.Args = append(dto.Args, *encodeExpr(a))
		}
		for _, kw := range v.Keywords {
			dto.Keywords = append(dto.Keywords, keywordDTO{Name: kw.Name, Value: encodeExpr(kw.Value)})
		}
	case *ReturnNode:
		dto.Expr = encodeExpr(v.Expr)
	case *DebugNode:
		dto.Expr = encodeExpr(v.Expr)
	case *WarnNode:
		dto.Expr = encodeExpr(v.Expr)
	case *ExtendNode:
		dto.Fragments = encodeFragments(v.Selector)
	case *ImportNode:
		dto.Name = v.Name
	case *DirectiveNode:
		dto.Value = v.Value
	case *CommentNode:
		dto.Value = v.Value
	default:
		return nil, zerr.With(zerr.New("cannot encode node"), "kind", n.Kind().String())
	}

	for _, child := range n.Children() {
		c, err := encodeNode(child)
		if err != nil {
			return nil, err
		}
		dto.Children = append(dto.Children, *c)
	}
	return dto, nil
}

//nolint:cyclop // one case per node kind
func decodeNode(dto *nodeDTO) (Node, error) {
	kind, ok := KindFromString(dto.Kind)
	if !ok {
		return nil, zerr.With(zerr.New("unknown node kind"), "kind", dto.Kind)
	}

	var n Node
	switch kind {
	case KindRoot:
		n = NewRoot()
	case KindRule:
		n = &RuleNode{Rule: decodeFragments(dto.Fragments)}
	case KindProp:
		n = &PropNode{Name: decodeFragments(dto.Fragments), Value: decodeExpr(dto.Expr)}
	case KindVariable:
		n = &VariableNode{Name: dto.Name, Expr: decodeExpr(dto.Expr), Guarded: dto.Guarded}
	case KindIf:
		ifn := &IfNode{Expr: decodeExpr(dto.Expr)}
		if dto.Else != nil {
			next, err := decodeNode(dto.Else)
			if err != nil {
				return nil, err
			}
			elseNode, ok := next.(*IfNode)
			if !ok {
				return nil, zerr.With(zerr.New("else branch is not an if node"), "kind", dto.Else.Kind)
			}
			ifn.Else = elseNode
		}
		ifn.relink()
		n = ifn
	case KindFor:
		n = &ForNode{Var: dto.Name, From: decodeExpr(dto.From), To: decodeExpr(dto.To), Exclusive: dto.Exclusive}
	case KindEach:
		n = &EachNode{Var: dto.Name, List: decodeExpr(dto.Expr)}
	case KindWhile:
		n = &WhileNode{Expr: decodeExpr(dto.Expr)}
	case KindFunction:
		n = &FunctionNode{Name: dto.Name, Args: decodeParams(dto.Params)}
	case KindMixinDef:
		n = &MixinDefNode{Name: dto.Name, Args: decodeParams(dto.Params)}
	case KindMixin:
		m := &MixinNode{Name: dto.Name}
		for i := range dto.Args {
			m.Args = append(m.Args, decodeExpr(&dto.Args[i]))
		}
		for _, kw := range dto.Keywords {
			m.Keywords = append(m.Keywords, script.Keyword{Name: kw.Name, Value: decodeExpr(kw.Value)})
		}
		n = m
	case KindReturn:
		n = &ReturnNode{Expr: decodeExpr(dto.Expr)}
	case KindDebug:
		n = &DebugNode{Expr: decodeExpr(dto.Expr)}
	case KindWarn:
		n = &WarnNode{Expr: decodeExpr(dto.Expr)}
	case KindExtend:
		n = &ExtendNode{Selector: decodeFragments(dto.Fragments)}
	case KindImport:
		n = &ImportNode{Name: dto.Name}
	case KindDirective:
		n = &DirectiveNode{Value: dto.Value}
	case KindComment:
		n = &CommentNode{Value: dto.Value}
	}

	if l, ok := n.(interface{ SetLine(int) }); ok {
		l.SetLine(dto.Line)
	}
	for i := range dto.Children {
		child, err := decodeNode(&dto.Children[i])
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}

func encodeExpr(e script.Expr) *exprDTO {
	switch v := e.(type) {
	case nil:
		return nil
	case *script.Variable:
		return &exprDTO{Var: v.Name}
	default:
		return &exprDTO{Raw: e.String()}
	}
}

func decodeExpr(dto *exprDTO) script.Expr {
	if dto == nil {
		return nil
	}
	if dto.Var != "" {
		return script.NewVariable(dto.Var)
	}
	return script.NewRaw(dto.Raw)
}

func encodeFragments(in script.Interpolated) []fragmentDTO {
	out := make([]fragmentDTO, 0, len(in))
	for _, f := range in {
		out = append(out, fragmentDTO{Text: f.Text, Expr: encodeExpr(f.Expr)})
	}
	return out
}

func decodeFragments(in []fragmentDTO) script.Interpolated {
	out := make(script.Interpolated, 0, len(in))
	for _, f := range in {
		out = append(out, script.Fragment{Text: f.Text, Expr: decodeExpr(f.Expr)})
	}
	return out
}

func encodeParams(params []script.Param) []paramDTO {
	out := make([]paramDTO, 0, len(params))
	for _, p := range params {
		name := ""
		if p.Name != nil {
			name = p.Name.Name
		}
		out = append(out, paramDTO{Name: name, Default: encodeExpr(p.Default)})
	}
	return out
}

func decodeParams(in []paramDTO) []script.Param {
	out := make([]script.Param, 0, len(in))
	for _, p := range in {
		out = append(out, script.Param{Name: script.NewVariable(p.Name), Default: decodeExpr(p.Default)})
	}
	return out
}
