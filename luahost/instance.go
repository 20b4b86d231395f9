package luahost

import (
	"github.com/signadot/remodel/instance"

	lua "github.com/yuin/gopher-lua"
)

// TypeName is the Lua type name of instance userdata.
const TypeName = "Instance"

var methods = map[string]lua.LGFunction{
	"FindFirstChild":   findFirstChild,
	"GetChildren":      getChildren,
	"GetFullName":      getFullName,
	"Destroy":          destroy,
	"ClearAllChildren": clearAllChildren,
	"Clone":            clone,
}

// Register installs the Instance metatable and the Instance global table
// (with Instance.new) into L. New instances are created in tree.
func Register(L *lua.LState, tree *instance.SharedTree) {
	mt := L.NewTypeMetatable(TypeName)
	mtab := L.SetFuncs(L.NewTable(), methods)
	L.SetField(mt, "__index", L.NewClosure(index, mtab))
	L.SetField(mt, "__newindex", L.NewFunction(newIndex))
	L.SetField(mt, "__tostring", L.NewFunction(toString))
	L.SetField(mt, "__eq", L.NewFunction(eq))

	cls := L.NewTable()
	L.SetField(cls, "new", L.NewFunction(func(L *lua.LState) int {
		inst, err := tree.NewInstance(L.CheckString(1))
		if err != nil {
			raise(L, err)
		}
		L.Push(Wrap(L, inst))
		return 1
	}))
	L.SetGlobal(TypeName, cls)
}

// Wrap wraps inst as instance userdata. Register must have been called on L.
func Wrap(L *lua.LState, inst instance.Instance) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = inst
	L.SetMetatable(ud, L.GetTypeMetatable(TypeName))
	return ud
}

// ToLValue converts a member value to Lua.
func ToLValue(L *lua.LState, v instance.Value) lua.LValue {
	switch x := v.(type) {
	case nil:
		return lua.LNil
	case string:
		return lua.LString(x)
	case instance.Instance:
		return Wrap(L, x)
	case *instance.Instance:
		if x == nil {
			return lua.LNil
		}
		return Wrap(L, *x)
	}
	return lua.LNil
}

// FromLValue converts a Lua value to a member value. Strings, nil and
// instance userdata map to their Go forms; numbers and booleans map to
// float64 and bool; anything else is returned as is and will not be
// accepted by any member.
func FromLValue(lv lua.LValue) instance.Value {
	if lv == nil || lv == lua.LNil {
		return nil
	}
	switch x := lv.(type) {
	case lua.LString:
		return string(x)
	case lua.LNumber:
		return float64(x)
	case lua.LBool:
		return bool(x)
	case *lua.LUserData:
		if inst, ok := x.Value.(instance.Instance); ok {
			return inst
		}
	}
	return lv
}

// Check returns the instance at stack position n or raises an argument
// error.
func Check(L *lua.LState, n int) instance.Instance {
	ud := L.CheckUserData(n)
	inst, ok := ud.Value.(instance.Instance)
	if !ok {
		L.ArgError(n, "Instance expected")
	}
	return inst
}

func raise(L *lua.LState, err error) {
	L.RaiseError("%s", err.Error())
}

func index(L *lua.LState) int {
	inst := Check(L, 1)
	key := L.CheckString(2)
	if m := L.GetField(L.CheckTable(lua.UpvalueIndex(1)), key); m != lua.LNil {
		L.Push(m)
		return 1
	}
	v, err := inst.Index(key)
	if err != nil {
		raise(L, err)
	}
	L.Push(ToLValue(L, v))
	return 1
}

func newIndex(L *lua.LState) int {
	inst := Check(L, 1)
	key := L.CheckString(2)
	if err := inst.NewIndex(key, FromLValue(L.Get(3))); err != nil {
		raise(L, err)
	}
	return 0
}

func toString(L *lua.LState) int {
	s, err := Check(L, 1).ToString()
	if err != nil {
		raise(L, err)
	}
	L.Push(lua.LString(s))
	return 1
}

func eq(L *lua.LState) int {
	a := Check(L, 1)
	b := Check(L, 2)
	L.Push(lua.LBool(a.Equal(b)))
	return 1
}

func findFirstChild(L *lua.LState) int {
	inst := Check(L, 1)
	c, ok, err := inst.FindFirstChild(L.CheckString(2))
	if err != nil {
		raise(L, err)
	}
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(Wrap(L, c))
	return 1
}

func getChildren(L *lua.LState) int {
	kids, err := Check(L, 1).GetChildren()
	if err != nil {
		raise(L, err)
	}
	tbl := L.CreateTable(len(kids), 0)
	for _, k := range kids {
		tbl.Append(Wrap(L, k))
	}
	L.Push(tbl)
	return 1
}

func getFullName(L *lua.LState) int {
	s, err := Check(L, 1).GetFullName()
	if err != nil {
		raise(L, err)
	}
	L.Push(lua.LString(s))
	return 1
}

func destroy(L *lua.LState) int {
	if err := Check(L, 1).Destroy(); err != nil {
		raise(L, err)
	}
	return 0
}

func clearAllChildren(L *lua.LState) int {
	if err := Check(L, 1).ClearAllChildren(); err != nil {
		raise(L, err)
	}
	return 0
}

func clone(L *lua.LState) int {
	c, err := Check(L, 1).Clone()
	if err != nil {
		raise(L, err)
	}
	L.Push(Wrap(L, c))
	return 1
}
