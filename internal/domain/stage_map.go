package domain

// DefaultStageMap covers every stage of every pipeline the portal supports.
// Stage ids are portal-wide unique in HubSpot, so the pipeline id is not part
// of the key. New pipelines appear in the CRM faster than this table is
// updated; unmapped stages fall back to a closed-date heuristic in the
// resolver.
func DefaultStageMap() StageMap {
	return StageMap{
		// Servicio al Cliente
		"68493207": StatusOpen,       // Nueva solicitud
		"68493208": StatusInProgress, // Asignada
		"68493209": StatusInProgress, // En evaluación
		"68493210": StatusInProgress, // En resolución
		"68499521": StatusInProgress, // Derivado a otra area
		"68499522": StatusInProgress, // Validando resolución
		"70440825": StatusClosed,     // Entregado
		// Ticket Bodega
		"144262973":  StatusOpen,       // Recibido
		"144262974":  StatusInProgress, // En ejecución
		"1035414591": StatusInProgress, // Preparado
		"144262975":  StatusClosed,     // Resuelto
		"145752654":  StatusClosed,     // Rechazado
		// Ticket Capacitaciones
		"71149428":   StatusOpen,       // Recibido
		"1005134935": StatusInProgress, // Contactado
		"71149429":   StatusInProgress, // Cliente agendado
		"71149430":   StatusClosed,     // Capacitación realizada
		"145752617":  StatusClosed,     // Rechazado
		"260468294":  StatusClosed,     // Cliente no asiste
		// Ticket Comercial
		"147570346": StatusOpen,       // Recibido
		"147570348": StatusInProgress, // En Ejecución
		"147570349": StatusClosed,     // Resuelto
		// Ticket Desarrollo
		"99686657":   StatusOpen,       // Recibido
		"1069164548": StatusInProgress, // Planificado
		"99686658":   StatusInProgress, // En ejecución
		"1069147160": StatusInProgress, // En QA
		"1069159723": StatusInProgress, // En QA Funcional
		"1069159724": StatusInProgress, // Paso a Producción
		"1069184947": StatusInProgress, // Validar en Producción
		"99686659":   StatusClosed,     // Resuelto
		"145785515":  StatusClosed,     // Rechazado
		// Tickets Fábrica
		"144316782": StatusOpen,       // Recibido
		"144316783": StatusInProgress, // En ejecución
		"144316784": StatusClosed,     // Resuelto
		"145785486": StatusClosed,     // Rechazado
		// Ticket Finanzas
		"71129972":  StatusOpen,       // Recibido
		"71129973":  StatusInProgress, // En ejecución
		"71129974":  StatusClosed,     // Resuelto
		"145752666": StatusClosed,     // Rechazado
		// Ticket Infraestructura
		"99227971":  StatusOpen,       // Recibido
		"99227972":  StatusInProgress, // En ejecución
		"99705958":  StatusClosed,     // Resuelto
		"145735534": StatusClosed,     // Rechazado
		// Ticket Producto/Ingeniería
		"99705960":   StatusOpen,       // Recibido
		"1192675130": StatusInProgress, // Asignado
		"99705961":   StatusInProgress, // En ejecución
		"99705962":   StatusClosed,     // Resuelto
		"145785508":  StatusClosed,     // Rechazado
		// Ticket Resolución Operativa
		"99686661":   StatusOpen,       // Recibido
		"1135170575": StatusInProgress, // Asignado
		"99686662":   StatusInProgress, // En ejecución
		"1138238262": StatusInProgress, // Enviado a QA
		"145752636":  StatusClosed,     // Resuelto
		"99686663":   StatusClosed,     // Rechazado
		// Operaciones
		"106187291": StatusInProgress, // Infraestructura
		"106187292": StatusInProgress, // Ingeniería
		"106187293": StatusInProgress, // Fábrica
		"106195979": StatusInProgress, // Bodega MP
		"106195980": StatusInProgress, // Fabricación y Rotulación
		"106282801": StatusInProgress, // Bodega ProdTer
		"106282802": StatusInProgress, // Coordinación
		"106282803": StatusInProgress, // Servicio Técnico
		"106282804": StatusInProgress, // Soporte
		"106187294": StatusClosed,     // Cerrados
		// Tickets Coordinación
		"150127021":  StatusOpen,       // Recibido
		"150127022":  StatusInProgress, // En coordinación
		"1154516813": StatusWaiting,    // En espera de cliente
		"1154516814": StatusInProgress, // En proceso de instalación
		"150127023":  StatusClosed,     // Instalado
		"150127024":  StatusClosed,     // Rechazado
		// Mesa de Ayuda Perú
		"166376230": StatusOpen,       // Nueva Solicitud
		"166376231": StatusInProgress, // Asignada
		"166376232": StatusInProgress, // En evaluación
		"219351877": StatusInProgress, // En resolución
		"219351878": StatusInProgress, // Derivado a otra area
		"219351879": StatusInProgress, // Validando resolución
		"166376233": StatusClosed,     // Entregado
		// Bodega/Fábrica Perú
		"206590125": StatusOpen,       // Recibido
		"206590126": StatusInProgress, // En Ejecución
		"206590128": StatusClosed,     // Resuelto
		"206590127": StatusClosed,     // Rechazado
		// Finanzas Perú
		"219338901": StatusOpen,       // Recibido
		"219338902": StatusInProgress, // En Ejecución
		"219338903": StatusClosed,     // Resuelto
		"219338904": StatusClosed,     // Rechazado
		// Capacitaciones Perú
		"220152760":  StatusOpen,       // Recibido
		"1003059981": StatusInProgress, // Contactado
		"220152761":  StatusInProgress, // Cliente agendado
		"220152832":  StatusClosed,     // Capacitación realizada
		"220152833":  StatusClosed,     // Rechazado
		// Coordinación Perú
		"1000634720": StatusOpen,       // Recibido
		"1000634721": StatusInProgress, // En Coordinación
		"1000634722": StatusClosed,     // Instalado
		"1000634723": StatusClosed,     // Rechazado
		// Autoatencion
		"1297561004": StatusOpen,       // Nuevo
		"1297561005": StatusInProgress, // En proceso
		"1297561006": StatusWaiting,    // Esperando Cliente
		"1297561007": StatusClosed,     // Resuelto
		"1297561008": StatusClosed,     // Cerrado
	}
}

// DefaultCategoryMap labels the HubSpot ticket category enum. Unknown codes
// pass through verbatim so operators notice gaps.
func DefaultCategoryMap() CategoryMap {
	return CategoryMap{
		"PRODUCT_ISSUE":   "Problema con Producto",
		"BILLING_ISSUE":   "Facturación",
		"FEATURE_REQUEST": "Solicitud de Funcionalidad",
		"GENERAL_INQUIRY": "Consulta General",
	}
}
