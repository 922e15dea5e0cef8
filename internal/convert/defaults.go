package convert

import (
	"fmt"

	"github.com/zbyte64/micromodels-forms/pkg/forms"
	"github.com/zbyte64/micromodels-forms/pkg/micromodel"
)

// TimeFormat renders time-of-day values on datetime destinations.
const TimeFormat = "15:04:05"

// simpleConversions maps destination field types onto the model kinds that
// forward their keyword set unchanged.
var simpleConversions = map[forms.FieldType][]micromodel.Kind{
	forms.FieldTypeInteger: {
		micromodel.KindAuto,
		micromodel.KindInteger,
		micromodel.KindSmallInteger,
		micromodel.KindPositiveInteger,
		micromodel.KindPositiveSmallInteger,
	},
	forms.FieldTypeDecimal:  {micromodel.KindDecimal, micromodel.KindFloat},
	forms.FieldTypeFile:     {micromodel.KindFile, micromodel.KindFilePath, micromodel.KindImage},
	forms.FieldTypeDateTime: {micromodel.KindDateTime},
	forms.FieldTypeDate:     {micromodel.KindDate},
	forms.FieldTypeBoolean:  {micromodel.KindBoolean},
	forms.FieldTypeText:     {micromodel.KindChar, micromodel.KindPhone, micromodel.KindSlug},
	forms.FieldTypeTextArea: {micromodel.KindText, micromodel.KindXML, micromodel.KindJSON},
	forms.FieldTypeURI:      {micromodel.KindURI},
	forms.FieldTypeURIFile:  {micromodel.KindURIFile},
}

func defaultFuncs() map[micromodel.Kind]Func {
	funcs := make(map[micromodel.Kind]Func)
	for dest, kinds := range simpleConversions {
		fn := Simple(dest)
		for _, kind := range kinds {
			funcs[kind] = fn
		}
	}

	funcs[micromodel.KindTime] = convTime
	funcs[micromodel.KindEmail] = convEmail
	funcs[micromodel.KindIPAddress] = convIPAddress
	funcs[micromodel.KindURL] = convURL
	funcs[micromodel.KindNullBoolean] = convNullBoolean
	funcs[micromodel.KindModel] = convModel
	funcs[micromodel.KindModelCollection] = convModelCollection
	funcs[micromodel.KindFieldCollection] = convFieldCollection
	return funcs
}

// Simple returns a conversion that forwards the keyword set to a fixed
// destination field type.
func Simple(dest forms.FieldType) Func {
	return func(_ *Converter, req Request) (Result, error) {
		return Converted(req.Kwargs.Field(dest)), nil
	}
}

// convTime renders as a datetime input restricted to the time portion. The
// filter strips the date from full timestamps so prefilled values round-trip.
func convTime(_ *Converter, req Request) (Result, error) {
	kw := req.Kwargs
	kw.Filters = append(kw.Filters, forms.TimeOnly)
	if kw.Format == "" {
		kw.Format = TimeFormat
	}
	return Converted(kw.Field(forms.FieldTypeDateTime)), nil
}

func convEmail(_ *Converter, req Request) (Result, error) {
	kw := req.Kwargs
	kw.Validators = append(kw.Validators, forms.Email())
	return Converted(kw.Field(forms.FieldTypeText)), nil
}

func convIPAddress(_ *Converter, req Request) (Result, error) {
	kw := req.Kwargs
	kw.Validators = append(kw.Validators, forms.IPAddress())
	return Converted(kw.Field(forms.FieldTypeText)), nil
}

func convURL(_ *Converter, req Request) (Result, error) {
	kw := req.Kwargs
	kw.Validators = append(kw.Validators, forms.URL())
	return Converted(kw.Field(forms.FieldTypeText)), nil
}

func convNullBoolean(_ *Converter, req Request) (Result, error) {
	kw := req.Kwargs
	if len(kw.Choices) == 0 {
		kw.Choices = forms.NullBoolChoices()
	}
	field := kw.Field(forms.FieldTypeSelect)
	field.Coerce = forms.NullBoolCoerce
	return Converted(field), nil
}

func convModel(conv *Converter, req Request) (Result, error) {
	sub, err := conv.ModelForm(req.Field.Ref, BuildOptions{})
	if err != nil {
		return Result{}, err
	}
	field := req.Kwargs.Field(forms.FieldTypeSubForm)
	field.SubForm = sub
	return Converted(field), nil
}

func convModelCollection(conv *Converter, req Request) (Result, error) {
	sub, err := conv.ModelForm(req.Field.Ref, BuildOptions{})
	if err != nil {
		return Result{}, err
	}
	item := req.Kwargs.Field(forms.FieldTypeSubForm)
	item.SubForm = sub
	field := req.Kwargs.Field(forms.FieldTypeList)
	field.Items = &item
	return Converted(field), nil
}

// convFieldCollection converts the element declaration and embeds it as a
// repeatable list. Overrides supplied for the collection are forwarded to the
// element conversion rather than discarded.
func convFieldCollection(conv *Converter, req Request) (Result, error) {
	elem := *req.Field.Elem
	if elem.Name == "" {
		elem.Name = req.Field.Name
	}
	inner, err := conv.Convert(req.Model, elem, req.Args)
	if err != nil {
		return Result{}, err
	}
	if inner.Status == StatusSkipped {
		return Skipped(fmt.Sprintf("element kind %q: %s", elem.Kind, inner.Reason)), nil
	}
	field := req.Kwargs.Field(forms.FieldTypeList)
	item := inner.Field
	field.Items = &item
	return Converted(field), nil
}
