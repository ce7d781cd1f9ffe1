package kernel

type SessionID string

func NewSessionID(id string) SessionID { return SessionID(id) }
func (s SessionID) String() string     { return string(s) }
func (s SessionID) IsEmpty() bool      { return string(s) == "" }

type ProviderID string

func NewProviderID(id string) ProviderID { return ProviderID(id) }
func (p ProviderID) String() string      { return string(p) }
func (p ProviderID) IsEmpty() bool       { return string(p) == "" }

type ModelID string

func NewModelID(id string) ModelID { return ModelID(id) }
func (m ModelID) String() string   { return string(m) }
func (m ModelID) IsEmpty() bool    { return string(m) == "" }
