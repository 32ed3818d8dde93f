package transcoder

import (
	"github.com/wippyai/layout-codec/transcoder/internal/types"
)

type CompiledType = types.CompiledType
