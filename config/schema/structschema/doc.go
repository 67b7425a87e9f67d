// Package structschema derives a config.Schema from a Go struct type.
//
// Field names come from the `config` struct tag (see WithTagName) and fall
// back to the Go field name. Decoding follows
// github.com/go-viper/mapstructure/v2 rules, so keys match field names case
// insensitively, embedded structs are squashed into their parent, and
// strings are weakly converted where needed.
//
// Type mapping:
//
//	struct                         -> schema.Object
//	*T                             -> schema.Optional
//	[]T, [N]T                      -> schema.Array
//	string, []byte                 -> schema.String()
//	time.Duration, time.Time       -> schema.String()
//	big.Int                        -> schema.BigInt()
//	bool                           -> schema.Boolean()
//	int*, uint*, float*            -> schema.Number()
//	map, interface, anything else  -> schema.Custom
//
// Validate decodes the merged tree, fills zero fields from WithDefaults with
// dario.cat/mergo, and checks `validate` tags with
// github.com/go-playground/validator/v10.
package structschema
