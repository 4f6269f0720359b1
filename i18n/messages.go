package i18n

var catalog = map[string]map[string]string{
	"es": {
		"required":      "Obligatorio",
		"app.brand":     "Hospital System",
		"app.heading":   "Sistema de Gestión Hospitalaria",
		"app.subtitle":  "Administre pacientes, médicos, citas, consultas y facturación desde un solo lugar.",
		"app.footer":    "Hospital System",
		"nav.home":      "Inicio",
		"nav.patients":  "Pacientes",
		"nav.appts":     "Citas",
		"nav.doctors":   "Médicos",
		"nav.consults":  "Consultas",
		"nav.invoices":  "Facturación",
		"nav.specs":     "Especialidades",
		"nav.open":      "Ingresar",
		"home.patients": "Registro y gestión de pacientes e historias clínicas.",
		"home.doctors":  "Médicos, colegiaturas y especialidades.",
		"home.appts":    "Programación y seguimiento de citas.",
		"home.consults": "Consultas médicas y observaciones.",
		"home.invoices": "Facturas, pagos y estadísticas de ingresos.",

		"common.id":            "ID",
		"common.actions":       "Acciones",
		"common.new":           "Nuevo",
		"common.edit":          "Editar",
		"common.delete":        "Eliminar",
		"common.cancel":        "Cancelar",
		"common.save":          "Guardar",
		"common.update":        "Actualizar",
		"common.back":          "Volver",
		"common.select":        "Seleccione...",
		"common.confirm_yes":   "Sí, eliminar",
		"common.confirm_title": "Confirmar eliminación",
		"common.redirecting":   "Redirigiendo a la lista...",
		"common.not_found":     "Página no encontrada",
		"common.invalid_id":    "Identificador inválido",
		"common.error":         "Ocurrió un error inesperado",
		"common.deleted":       "Registro eliminado",
		"common.filter":        "Filtrar",

		"field.dni":             "DNI",
		"field.nombres":         "Nombres",
		"field.apellidos":       "Apellidos",
		"field.fechaNacimiento": "Fecha Nacimiento",
		"field.sexo":            "Sexo",
		"field.direccion":       "Dirección",
		"field.telefono":        "Teléfono",
		"field.correo":          "Correo",
		"field.estado":          "Estado",
		"field.colegiatura":     "Colegiatura",
		"field.especialidad":    "Especialidad",
		"field.nombre":          "Nombre",
		"field.descripcion":     "Descripción",
		"field.idPaciente":      "Paciente",
		"field.idMedico":        "Médico",
		"field.idCita":          "Cita",
		"field.fecha":           "Fecha",
		"field.hora":            "Hora",
		"field.motivo":          "Motivo",
		"field.motivoConsulta":  "Motivo de consulta",
		"field.observaciones":   "Observaciones",
		"field.fechaEmision":    "Fecha de Emisión",
		"field.total":           "Total",
		"field.tipo":            "Tipo",
		"field.concepto":        "Concepto",
		"field.monto":           "Monto (S/.)",
		"col.patient_id":        "Paciente ID",
		"col.doctor_id":         "Médico ID",
		"col.appt_id":           "ID Cita",
		"col.doctor_ref":        "ID Médico",
		"col.patient_ref":       "ID Paciente",

		"sex.M": "Masculino",
		"sex.F": "Femenino",

		"status.activo":     "Activo",
		"status.inactivo":   "Inactivo",
		"status.programada": "Programada",
		"status.atendida":   "Atendida",
		"status.cancelada":  "Cancelada",
		"status.pendiente":  "Pendiente",
		"status.pagado":     "Pagado",

		"tipo.alergias":             "Alergias",
		"tipo.enfermedades previas": "Enfermedades previas",
		"tipo.cirugías":             "Cirugías",
		"tipo.otros":                "Otros",

		"patients.title":          "Lista de Pacientes",
		"patients.new":            "Nuevo Paciente",
		"patients.edit":           "Editar Paciente",
		"patients.empty":          "No hay pacientes registrados.",
		"patients.load_error":     "Error al cargar pacientes",
		"patients.one_load_error": "Error al cargar paciente",
		"patients.delete_error":   "Error al eliminar paciente",
		"patients.confirm_delete": "¿Seguro que desea eliminar este paciente?",
		"patients.created":        "Paciente registrado correctamente",
		"patients.updated":        "Paciente actualizado correctamente",
		"patients.save_error":     "Error al guardar paciente",
		"patients.history":        "Ver historia",

		"doctors.title":            "Lista de Médicos",
		"doctors.new":              "Nuevo Médico",
		"doctors.edit":             "Editar Médico",
		"doctors.empty":            "Sin médicos registrados.",
		"doctors.load_error":       "Error al cargar médicos",
		"doctors.one_load_error":   "Error al cargar médico",
		"doctors.delete_error":     "Error al eliminar médico",
		"doctors.confirm_delete":   "¿Seguro que desea eliminar este médico?",
		"doctors.created":          "Médico registrado correctamente",
		"doctors.updated":          "Médico actualizado correctamente",
		"doctors.save_error":       "Error al guardar médico",
		"doctors.select_specialty": "Seleccione una especialidad",
		"doctors.manage_specs":     "Gestionar especialidades",

		"specs.title":        "Especialidades",
		"specs.new":          "Nueva Especialidad",
		"specs.empty":        "No hay especialidades registradas.",
		"specs.load_error":   "Error al cargar especialidades",
		"specs.create_error": "Error al crear especialidad",
		"specs.created":      "Especialidad creada correctamente",
		"specs.add":          "Agregar",

		"appts.title":          "Lista de Citas",
		"appts.new":            "Nueva Cita",
		"appts.edit":           "Editar Cita",
		"appts.empty":          "No hay citas registradas.",
		"appts.load_error":     "Error al cargar citas",
		"appts.one_load_error": "Error al cargar cita",
		"appts.delete_error":   "Error al eliminar cita",
		"appts.confirm_delete": "¿Seguro que desea eliminar esta cita?",
		"appts.created":        "Cita registrada correctamente",
		"appts.updated":        "Cita actualizada correctamente",
		"appts.save_error":     "Error al guardar cita",
		"appts.refs_error":     "Error al cargar pacientes o médicos",

		"consults.title":          "Lista de Consultas",
		"consults.new":            "Nueva Consulta",
		"consults.edit":           "Editar Consulta",
		"consults.empty":          "No hay consultas registradas.",
		"consults.load_error":     "Error al cargar consultas",
		"consults.one_load_error": "Error al cargar consulta",
		"consults.delete_error":   "Error al eliminar consulta",
		"consults.confirm_delete": "¿Seguro que desea eliminar esta consulta?",
		"consults.created":        "Consulta registrada correctamente",
		"consults.updated":        "Consulta actualizada correctamente",
		"consults.save_error":     "Error al guardar consulta",

		"invoices.title":            "Gestión de Facturas",
		"invoices.new":              "Nueva Factura",
		"invoices.edit":             "Editar Factura",
		"invoices.empty":            "Sin facturas registradas.",
		"invoices.load_error":       "Error al cargar facturas",
		"invoices.one_load_error":   "Error al cargar factura",
		"invoices.delete_error":     "Error al eliminar factura",
		"invoices.confirm_delete":   "¿Seguro que desea eliminar esta factura?",
		"invoices.created":          "Factura registrada correctamente",
		"invoices.updated":          "Factura actualizada correctamente",
		"invoices.save_error":       "Error al guardar factura",
		"invoices.total_income":     "Total Ingresos",
		"invoices.paid":             "Pagado",
		"invoices.pending":          "Pendiente",
		"invoices.count":            "Total Facturas",
		"invoices.show_charts":      "Mostrar gráficos",
		"invoices.hide_charts":      "Ocultar gráficos",
		"invoices.monthly":          "Ingresos por mes",
		"invoices.split":            "Distribución de pagos",
		"invoices.patient":          "Paciente",
		"invoices.pdf":              "PDF",
		"invoices.word":             "Word",
		"invoices.word_unavailable": "Descarga en Word aún no implementada",
		"invoices.download_error":   "Error al descargar factura",
		"invoices.mark_paid":        "Marcar pagada",
		"invoices.status_updated":   "Estado de la factura actualizado",
		"invoices.status_error":     "Error al actualizar estado",
		"invoices.details":          "Detalle de la factura",
		"invoices.details_empty":    "Sin conceptos registrados.",
		"invoices.details_total":    "Suma de conceptos",
		"invoices.add_detail":       "Agregar concepto",
		"invoices.detail_added":     "Concepto agregado",
		"invoices.detail_error":     "Error al agregar concepto",
		"invoices.downloading":      "La descarga del PDF comenzará en breve.",

		"history.title":        "Historia Clínica",
		"history.not_found":    "No se encontró historia clínica para este paciente.",
		"history.load_error":   "Error al cargar historia clínica",
		"history.opened":       "Fecha Apertura",
		"history.antecedents":  "Antecedentes",
		"history.empty":        "Sin antecedentes médicos registrados.",
		"history.add":          "Agregar antecedente",
		"history.hide_form":    "Ocultar formulario",
		"history.added":        "Antecedente agregado correctamente",
		"history.add_error":    "Error al agregar antecedente",
		"history.placeholder":  "Describe brevemente el antecedente...",
		"history.back_to_list": "Volver a pacientes",
	},
	"en": {
		"required":      "Required",
		"app.brand":     "Hospital System",
		"app.heading":   "Hospital Management System",
		"app.subtitle":  "Manage patients, doctors, appointments, consultations and billing in one place.",
		"app.footer":    "Hospital System",
		"nav.home":      "Home",
		"nav.patients":  "Patients",
		"nav.appts":     "Appointments",
		"nav.doctors":   "Doctors",
		"nav.consults":  "Consultations",
		"nav.invoices":  "Billing",
		"nav.specs":     "Specialties",
		"nav.open":      "Open",
		"home.patients": "Patient registry and clinical histories.",
		"home.doctors":  "Doctors, licenses and specialties.",
		"home.appts":    "Appointment scheduling and follow-up.",
		"home.consults": "Medical consultations and notes.",
		"home.invoices": "Invoices, payments and income statistics.",

		"common.id":            "ID",
		"common.actions":       "Actions",
		"common.new":           "New",
		"common.edit":          "Edit",
		"common.delete":        "Delete",
		"common.cancel":        "Cancel",
		"common.save":          "Save",
		"common.update":        "Update",
		"common.back":          "Back",
		"common.select":        "Select...",
		"common.confirm_yes":   "Yes, delete",
		"common.confirm_title": "Confirm deletion",
		"common.redirecting":   "Returning to the list...",
		"common.not_found":     "Page not found",
		"common.invalid_id":    "Invalid identifier",
		"common.error":         "An unexpected error occurred",
		"common.deleted":       "Record deleted",
		"common.filter":        "Filter",

		"field.dni":             "National ID",
		"field.nombres":         "Given names",
		"field.apellidos":       "Family names",
		"field.fechaNacimiento": "Birth date",
		"field.sexo":            "Sex",
		"field.direccion":       "Address",
		"field.telefono":        "Phone",
		"field.correo":          "Email",
		"field.estado":          "Status",
		"field.colegiatura":     "License",
		"field.especialidad":    "Specialty",
		"field.nombre":          "Name",
		"field.descripcion":     "Description",
		"field.idPaciente":      "Patient",
		"field.idMedico":        "Doctor",
		"field.idCita":          "Appointment",
		"field.fecha":           "Date",
		"field.hora":            "Time",
		"field.motivo":          "Reason",
		"field.motivoConsulta":  "Reason for visit",
		"field.observaciones":   "Observations",
		"field.fechaEmision":    "Issue date",
		"field.total":           "Total",
		"field.tipo":            "Type",
		"field.concepto":        "Concept",
		"field.monto":           "Amount (S/.)",
		"col.patient_id":        "Patient ID",
		"col.doctor_id":         "Doctor ID",
		"col.appt_id":           "Appointment ID",
		"col.doctor_ref":        "Doctor ID",
		"col.patient_ref":       "Patient ID",

		"sex.M": "Male",
		"sex.F": "Female",

		"status.activo":     "Active",
		"status.inactivo":   "Inactive",
		"status.programada": "Scheduled",
		"status.atendida":   "Attended",
		"status.cancelada":  "Cancelled",
		"status.pendiente":  "Pending",
		"status.pagado":     "Paid",

		"tipo.alergias":             "Allergies",
		"tipo.enfermedades previas": "Prior illnesses",
		"tipo.cirugías":             "Surgeries",
		"tipo.otros":                "Other",

		"patients.title":          "Patients",
		"patients.new":            "New Patient",
		"patients.edit":           "Edit Patient",
		"patients.empty":          "No patients registered.",
		"patients.load_error":     "Could not load patients",
		"patients.one_load_error": "Could not load patient",
		"patients.delete_error":   "Could not delete patient",
		"patients.confirm_delete": "Delete this patient?",
		"patients.created":        "Patient created",
		"patients.updated":        "Patient updated",
		"patients.save_error":     "Could not save patient",
		"patients.history":        "View history",

		"doctors.title":            "Doctors",
		"doctors.new":              "New Doctor",
		"doctors.edit":             "Edit Doctor",
		"doctors.empty":            "No doctors registered.",
		"doctors.load_error":       "Could not load doctors",
		"doctors.one_load_error":   "Could not load doctor",
		"doctors.delete_error":     "Could not delete doctor",
		"doctors.confirm_delete":   "Delete this doctor?",
		"doctors.created":          "Doctor created",
		"doctors.updated":          "Doctor updated",
		"doctors.save_error":       "Could not save doctor",
		"doctors.select_specialty": "Select a specialty",
		"doctors.manage_specs":     "Manage specialties",

		"specs.title":        "Specialties",
		"specs.new":          "New Specialty",
		"specs.empty":        "No specialties registered.",
		"specs.load_error":   "Could not load specialties",
		"specs.create_error": "Could not create specialty",
		"specs.created":      "Specialty created",
		"specs.add":          "Add",

		"appts.title":          "Appointments",
		"appts.new":            "New Appointment",
		"appts.edit":           "Edit Appointment",
		"appts.empty":          "No appointments registered.",
		"appts.load_error":     "Could not load appointments",
		"appts.one_load_error": "Could not load appointment",
		"appts.delete_error":   "Could not delete appointment",
		"appts.confirm_delete": "Delete this appointment?",
		"appts.created":        "Appointment created",
		"appts.updated":        "Appointment updated",
		"appts.save_error":     "Could not save appointment",
		"appts.refs_error":     "Could not load patients or doctors",

		"consults.title":          "Consultations",
		"consults.new":            "New Consultation",
		"consults.edit":           "Edit Consultation",
		"consults.empty":          "No consultations registered.",
		"consults.load_error":     "Could not load consultations",
		"consults.one_load_error": "Could not load consultation",
		"consults.delete_error":   "Could not delete consultation",
		"consults.confirm_delete": "Delete this consultation?",
		"consults.created":        "Consultation created",
		"consults.updated":        "Consultation updated",
		"consults.save_error":     "Could not save consultation",

		"invoices.title":            "Invoices",
		"invoices.new":              "New Invoice",
		"invoices.edit":             "Edit Invoice",
		"invoices.empty":            "No invoices registered.",
		"invoices.load_error":       "Could not load invoices",
		"invoices.one_load_error":   "Could not load invoice",
		"invoices.delete_error":     "Could not delete invoice",
		"invoices.confirm_delete":   "Delete this invoice?",
		"invoices.created":          "Invoice created",
		"invoices.updated":          "Invoice updated",
		"invoices.save_error":       "Could not save invoice",
		"invoices.total_income":     "Total income",
		"invoices.paid":             "Paid",
		"invoices.pending":          "Pending",
		"invoices.count":            "Invoices",
		"invoices.show_charts":      "Show charts",
		"invoices.hide_charts":      "Hide charts",
		"invoices.monthly":          "Income per month",
		"invoices.split":            "Payment status",
		"invoices.patient":          "Patient",
		"invoices.pdf":              "PDF",
		"invoices.word":             "Word",
		"invoices.word_unavailable": "Word download is not implemented yet",
		"invoices.download_error":   "Could not download invoice",
		"invoices.mark_paid":        "Mark paid",
		"invoices.status_updated":   "Invoice status updated",
		"invoices.status_error":     "Could not update status",
		"invoices.details":          "Invoice lines",
		"invoices.details_empty":    "No lines yet.",
		"invoices.details_total":    "Lines total",
		"invoices.add_detail":       "Add line",
		"invoices.detail_added":     "Line added",
		"invoices.detail_error":     "Could not add line",
		"invoices.downloading":      "The PDF download will start shortly.",

		"history.title":        "Clinical History",
		"history.not_found":    "No clinical history was found for this patient.",
		"history.load_error":   "Could not load clinical history",
		"history.opened":       "Opened on",
		"history.antecedents":  "Medical background",
		"history.empty":        "No background entries registered.",
		"history.add":          "Add entry",
		"history.hide_form":    "Hide form",
		"history.added":        "Entry added",
		"history.add_error":    "Could not add entry",
		"history.placeholder":  "Briefly describe the entry...",
		"history.back_to_list": "Back to patients",
	},
}
