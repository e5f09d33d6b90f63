package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PrettyJson formata um valor como JSON indentado para uso em logs.
// Se o valor não puder ser serializado, devolve a representação padrão
// para não perder a informação no log
func PrettyJson(in any) string {
	raw, ok := in.([]byte)
	if !ok {
		var err error
		raw, err = json.Marshal(in)
		if err != nil {
			return fmt.Sprintf("%+v", in)
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "\t"); err != nil {
		return string(raw)
	}

	return out.String()
}
