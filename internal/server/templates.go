package server

import "html/template"

// indexPage is the landing form. Field names match the original product
// form: dates use the AAAA-MM-DD format, attachments accept any file type
// (unparsed formats are listed as reference material).
const indexPage = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Itinerary Studio</title>
<style>
body { font-family: Georgia, serif; max-width: 40rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
label { display: block; margin-top: 1rem; font-weight: bold; }
input, select, textarea { width: 100%; padding: .4rem; margin-top: .2rem; }
button { margin-top: 1.5rem; padding: .6rem 1.4rem; }
</style>
</head>
<body>
<h1>Itinerary Studio</h1>
<form action="/generate" method="post" enctype="multipart/form-data">
  <label for="client_name">Cliente</label>
  <input id="client_name" name="client_name" required>
  <label for="primary_destination">Destino principal</label>
  <input id="primary_destination" name="primary_destination">
  <label for="start_date">Fecha de inicio</label>
  <input id="start_date" name="start_date" type="date" required>
  <label for="end_date">Fecha de fin</label>
  <input id="end_date" name="end_date" type="date" required>
  <label for="travel_style">Estilo de viaje</label>
  <select id="travel_style" name="travel_style">
    <option value="premium">Premium</option>
    <option value="lujo">Lujo</option>
    <option value="aventura">Aventura</option>
    <option value="clásico">Clásico</option>
  </select>
  <label for="special_requests">Peticiones especiales</label>
  <textarea id="special_requests" name="special_requests" rows="3"></textarea>
  <label for="attachments">Documentos de referencia</label>
  <input id="attachments" name="attachments" type="file" multiple>
  <button type="submit">Generar itinerario</button>
</form>
</body>
</html>
`

// errorPage shows a user-facing failure with a way back to the form.
const errorPage = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Itinerary Studio</title>
</head>
<body>
<h1>No se pudo completar la operación</h1>
<p>{{.Message}}</p>
<p><a href="/">Volver al formulario</a></p>
</body>
</html>
`

var (
	indexTemplate = template.Must(template.New("index").Parse(indexPage))
	errorTemplate = template.Must(template.New("error").Parse(errorPage))
)
