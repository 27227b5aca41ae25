package format

import (
	"fmt"
	"reflect"
)

// TextFormatter handles simple text output formatting
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format formats data as plain key/value text lines.
func (f *TextFormatter) Format(data interface{}) error {
	if data == nil {
		fmt.Println("No data")
		return nil
	}

	if s, ok := data.(string); ok {
		fmt.Println(s)
		return nil
	}

	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			fmt.Println("No data")
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		f.printStruct(v, "")
		return nil
	case reflect.Slice:
		if v.Len() == 0 {
			fmt.Println("No data")
			return nil
		}
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("Item %d:\n", i+1)
			item := v.Index(i)
			if item.Kind() == reflect.Struct {
				f.printStruct(item, "  ")
			} else {
				fmt.Printf("  %v\n", item.Interface())
			}
		}
		return nil
	default:
		fmt.Printf("%v\n", data)
		return nil
	}
}

func (f *TextFormatter) printStruct(v reflect.Value, indent string) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fmt.Printf("%s%s: %v\n", indent, formatHeader(field.Name), v.Field(i).Interface())
	}
}
