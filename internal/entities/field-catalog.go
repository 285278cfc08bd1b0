package entities

import (
	"reflect"

	"contract-studio/pkg/utils"
)

type FieldKind string

const (
	FieldString FieldKind = "string"
	FieldBool   FieldKind = "bool"
	FieldEnum   FieldKind = "enum"
)

// FieldInfo описывает одно известное поле анкеты.
type FieldInfo struct {
	Name    string    `json:"name"`
	Label   string    `json:"label"`
	Kind    FieldKind `json:"kind"`
	Allowed []string  `json:"allowed,omitempty"`

	index int
}

var (
	enumType    = reflect.TypeOf((*Enum)(nil)).Elem()
	fieldList   []FieldInfo
	fieldByName map[string]FieldInfo
)

func init() {
	jsonFields := utils.JSONFields(reflect.TypeOf(Record{}))
	fieldList = make([]FieldInfo, 0, len(jsonFields))
	fieldByName = make(map[string]FieldInfo, len(jsonFields))

	for _, jf := range jsonFields {
		info := FieldInfo{Name: jf.Name, Label: jf.Field.Tag.Get("label"), index: jf.Index}
		switch {
		case jf.Field.Type.Implements(enumType):
			info.Kind = FieldEnum
			info.Allowed = reflect.Zero(jf.Field.Type).Interface().(Enum).Allowed()
		case jf.Field.Type.Kind() == reflect.Bool:
			info.Kind = FieldBool
		case jf.Field.Type.Kind() == reflect.String:
			info.Kind = FieldString
		default:
			continue
		}
		fieldList = append(fieldList, info)
		fieldByName[info.Name] = info
	}

	for i := range Deliverables {
		Deliverables[i].Label = fieldByName[Deliverables[i].Field].Label
	}
}

// Fields возвращает каталог полей в порядке объявления в Record.
func Fields() []FieldInfo {
	out := make([]FieldInfo, len(fieldList))
	copy(out, fieldList)
	return out
}

// LookupField ищет поле по имени (snake_case, как в json).
func LookupField(name string) (FieldInfo, bool) {
	info, ok := fieldByName[name]
	return info, ok
}

// Value возвращает текущее значение поля: string для строк и enum, bool для флагов.
func (r *Record) Value(name string) (interface{}, bool) {
	info, ok := fieldByName[name]
	if !ok {
		return nil, false
	}
	v := reflect.ValueOf(r).Elem().Field(info.index)
	if info.Kind == FieldBool {
		return v.Bool(), true
	}
	return v.String(), true
}

// SetString записывает строковое поле. Для enum и bool полей возвращает false.
func (r *Record) SetString(name, value string) bool {
	info, ok := fieldByName[name]
	if !ok || info.Kind != FieldString {
		return false
	}
	reflect.ValueOf(r).Elem().Field(info.index).SetString(value)
	return true
}

// SetBool записывает флаг.
func (r *Record) SetBool(name string, value bool) bool {
	info, ok := fieldByName[name]
	if !ok || info.Kind != FieldBool {
		return false
	}
	reflect.ValueOf(r).Elem().Field(info.index).SetBool(value)
	return true
}

// SetEnum записывает enum-поле только допустимым значением (или "" для сброса выбора).
func (r *Record) SetEnum(name, value string) bool {
	info, ok := fieldByName[name]
	if !ok || info.Kind != FieldEnum {
		return false
	}
	field := reflect.ValueOf(r).Elem().Field(info.index)
	candidate := reflect.ValueOf(value).Convert(field.Type())
	if !candidate.Interface().(Enum).Valid() {
		return false
	}
	field.Set(candidate)
	return true
}

// Valid проверяет, что все enum-поля содержат допустимые значения.
func (r *Record) Valid() bool {
	v := reflect.ValueOf(r).Elem()
	for _, info := range fieldList {
		if info.Kind != FieldEnum {
			continue
		}
		if !v.Field(info.index).Interface().(Enum).Valid() {
			return false
		}
	}
	return true
}
