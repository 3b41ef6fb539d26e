package constants

const Namespace = "bind"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace
