package funcwrap

// BuiltinObjType is the ObjectType of the builtin objects.
type BuiltinObjType struct {
	NameValue string
}

func (b *BuiltinObjType) Name() string {
	return b.NameValue
}

func (b *BuiltinObjType) String() string {
	return "Type::" + b.NameValue
}

var (
	TNil = &BuiltinObjType{
		NameValue: "nil",
	}
	TBool = &BuiltinObjType{
		NameValue: "bool",
	}
	TInt = &BuiltinObjType{
		NameValue: "int",
	}
	TFloat = &BuiltinObjType{
		NameValue: "float",
	}
	TDecimal = &BuiltinObjType{
		NameValue: "decimal",
	}
	TStr = &BuiltinObjType{
		NameValue: "str",
	}
	TArray = &BuiltinObjType{
		NameValue: "array",
	}
	TDict = &BuiltinObjType{
		NameValue: "dict",
	}
	TFunction = &BuiltinObjType{
		NameValue: "function",
	}
	TNativeFunction = &BuiltinObjType{
		NameValue: "nativeFunction",
	}
	TModule = &BuiltinObjType{
		NameValue: "module",
	}
	TError = &BuiltinObjType{
		NameValue: "error",
	}
)
