package diag

// TemplateKey identifies a localized message template. Keys are opaque to
// this package: the rendering layer resolves them to text and interpolates
// the named arguments bound on the diagnostic.
type TemplateKey string

// Target configuration templates.
const (
	KeyTargetInvalidAddressSpace      TemplateKey = "target_invalid_address_space"
	KeyTargetInvalidBits              TemplateKey = "target_invalid_bits"
	KeyTargetMissingAlignment         TemplateKey = "target_missing_alignment"
	KeyTargetInvalidAlignment         TemplateKey = "target_invalid_alignment"
	KeyTargetInconsistentArchitecture TemplateKey = "target_inconsistent_architecture"
	KeyTargetInconsistentPointerWidth TemplateKey = "target_inconsistent_pointer_width"
	KeyTargetInvalidBitsSize          TemplateKey = "target_invalid_bits_size"
)

// Subdiagnostic templates.
const (
	KeyExpectedTypeParameter      TemplateKey = "expected_type_parameter"
	KeyDelayedAtWithNewline       TemplateKey = "delayed_at_with_newline"
	KeyDelayedAtWithoutNewline    TemplateKey = "delayed_at_without_newline"
	KeyInvalidFlushedDelayedLevel TemplateKey = "invalid_flushed_delayed_level"
	KeyIndicateAnonymousOwner     TemplateKey = "indicate_anonymous_owner"
)
