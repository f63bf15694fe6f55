package report

const reportHTML = `<!DOCTYPE html>
<html>
<head>
<title>Cognia EDA Report</title>
<style>
body { font-family: "Segoe UI", Arial, sans-serif; margin: 40px; background: #f4f6f9; }
h1 { text-align: center; color: #2c3e50; margin-bottom: 30px; }
h2 { color: #34495e; border-bottom: 2px solid #dfe6e9; padding-bottom: 6px; margin-bottom: 20px; }
.section { background: #ffffff; padding: 25px; border-radius: 10px; box-shadow: 0 4px 12px rgba(0,0,0,0.06); margin-bottom: 40px; }
.info-box { background: #ffffff; padding: 20px; border-left: 6px solid #0d6efd; border-radius: 8px; margin-bottom: 30px; text-align: center; box-shadow: 0 4px 10px rgba(0,0,0,0.06); }
.table { border-collapse: collapse; width: 100%; margin-top: 15px; font-size: 14px; }
.table th, .table td { border: 1px solid #dee2e6; padding: 12px; text-align: center; vertical-align: middle; }
.table th { background-color: #f1f3f5; font-weight: 600; }
.table tr:nth-child(even) { background-color: #fafafa; }
select { width: 320px; height: 42px; padding: 6px 12px; font-size: 15px; border-radius: 10px; border: 1px solid #ccc; margin-bottom: 20px; }
img { display: block; margin: 0 auto; max-width: 100%; }
.alert { color: #b71c1c; font-weight: 600; }
.ok { color: green; font-weight: 600; }
.placeholder { color: gray; font-style: italic; text-align: center; }
</style>
</head>
<body>

<h1>Cognia &ndash; Exploratory Data Analysis Report</h1>

<div class="info-box">
  <b>Dataset:</b> {{.Dataset}} <br>
  <b>Generated:</b> {{.GeneratedAt.Format "02 Jan 2006, 15:04"}} <br>
  <b>Total Rows:</b> {{.Rows}} |
  <b>Total Columns:</b> {{.Columns}}
</div>

<div class="section">
  <h2>1. Dataset Overview</h2>
  <table class="table">
    <tr><th>Column</th><th>Type</th><th>Missing</th><th>Unique</th></tr>
    {{range .Overview}}<tr><td>{{.Name}}</td><td>{{title .Kind}}</td><td>{{.Missing}}</td><td>{{.Unique}}</td></tr>
    {{end}}
  </table>
  <p><b>Duplicate Records:</b> {{.Quality.DuplicateRecords}} ({{pct .Quality.DuplicatePercent}})</p>
  <p><b>Numeric Columns:</b> {{.Quality.NumericCount}}</p>
  <p><b>Categorical Columns:</b> {{.Quality.CategoricalCount}}</p>
</div>

<div class="section">
  <h2>2. Missing Value Analysis</h2>
  {{if .Missing}}
  <table class="table">
    <tr><th>Column</th><th>Missing</th><th>Percent</th></tr>
    {{range .Missing}}<tr><td>{{.Column}}</td><td>{{.Missing}}</td><td>{{pct .Percent}}</td></tr>
    {{end}}
  </table>
  {{else}}<p><i>No data available</i></p>{{end}}
</div>

<div class="section">
  <h2>3. Statistical Summary</h2>
  {{if .Summaries}}
  <table class="table">
    <tr><th>Column</th><th>Count</th><th>Mean</th><th>Std</th><th>Min</th><th>25%</th><th>50%</th><th>75%</th><th>Max</th></tr>
    {{range .Summaries}}<tr><td>{{.Column}}</td><td>{{.Count}}</td><td>{{num .Mean}}</td><td>{{num .Std}}</td><td>{{num .Min}}</td><td>{{num .Q25}}</td><td>{{num .Median}}</td><td>{{num .Q75}}</td><td>{{num .Max}}</td></tr>
    {{end}}
  </table>
  {{else}}<p><i>No numeric columns</i></p>{{end}}
</div>

<div class="section">
  <h2>4. Distribution Interpretation</h2>
  {{if .Interpretations}}
  <table class="table">
    <tr><th>Column</th><th>Skewness</th><th>Kurtosis</th><th>Interpretation</th></tr>
    {{range .Interpretations}}<tr><td>{{.Column}}</td><td>{{num .Skewness}}</td><td>{{num .Kurtosis}}</td><td>{{.Narrative}}</td></tr>
    {{end}}
  </table>
  {{else}}<p><i>No numeric columns</i></p>{{end}}
</div>

<div class="section">
  <h2>5. Outlier Analysis</h2>
  {{if .Outliers}}
  <table class="table">
    <tr><th>Column</th><th>Outliers</th><th>Percent</th><th>Lower Bound</th><th>Upper Bound</th></tr>
    {{range .Outliers}}<tr><td>{{.Column}}</td><td>{{.Count}}</td><td>{{pct .Percent}}</td><td>{{num .LowerBound}}</td><td>{{num .UpperBound}}</td></tr>
    {{end}}
  </table>
  {{else}}<p><i>No numeric columns</i></p>{{end}}
</div>

{{if .ChartsSkipped}}
<div class="section">
  <h2>6. Column Explorer</h2>
  <p class="placeholder">Chart rendering was unavailable for this run; tables above carry the full analysis.</p>
</div>
{{else}}
{{if .CategoryCharts}}
<div class="section">
  <h2>6. Categorical Column Explorer</h2>
  <div style="text-align:center;">
    <select onchange="document.getElementById('catImg').src = catCharts[this.value]">
      {{range .CategoryCharts}}<option value="{{.Column}}">{{.Column}}</option>{{end}}
    </select>
  </div>
  <img id="catImg" />
</div>
{{end}}
{{if .NumericCharts}}
<div class="section">
  <h2>7. Numeric Column Explorer</h2>
  <div style="text-align:center;">
    <select onchange="document.getElementById('numImg').src = numCharts[this.value]">
      {{range .NumericCharts}}<option value="{{.Column}}">{{.Column}}</option>{{end}}
    </select>
  </div>
  <img id="numImg" />
</div>
{{end}}
{{end}}

<div class="section">
  <h2>Correlation Analysis</h2>
  {{if .Correlation.Inline}}
    {{if .HeatmapURI}}<img src="{{.HeatmapURI}}" />{{else}}<p><i>No data available</i></p>{{end}}
  {{else}}
    <h3>Top Correlated Feature Pairs</h3>
    {{if .Correlation.Pairs}}
    <table class="table">
      <tr><th>Feature 1</th><th>Feature 2</th><th>Correlation</th></tr>
      {{range .Correlation.Pairs}}<tr><td>{{.FeatureA}}</td><td>{{.FeatureB}}</td><td>{{num .Strength}}</td></tr>
      {{end}}
    </table>
    {{else}}<p><i>No data available</i></p>{{end}}
    {{if and .Correlation.Collapsible .HeatmapURI}}
    <details style="margin-top:25px;">
      <summary style="cursor:pointer;font-weight:600;">Show Full Correlation Heatmap (Advanced)</summary>
      <img src="{{.HeatmapURI}}" />
    </details>
    {{end}}
  {{end}}
</div>

<div class="section">
  <h2>Alerts &amp; Warnings</h2>
  {{if .Alerts}}
    {{range .Alerts}}<p class="alert">&#9888; {{.}}</p>
    {{end}}
  {{else}}<p class="ok">&#10004; No major data quality issues detected</p>{{end}}
</div>

{{if not .ChartsSkipped}}
<script>
const catCharts = {{.CatChartJSON}};
const numCharts = {{.NumChartJSON}};
const catImg = document.getElementById('catImg');
if (catImg) { catImg.src = catCharts[{{.FirstCatChart}}] || ''; }
const numImg = document.getElementById('numImg');
if (numImg) { numImg.src = numCharts[{{.FirstNumChart}}] || ''; }
</script>
{{end}}

<p style="text-align:center;color:gray;">Generated by <b>Cognia</b></p>

</body>
</html>
`
